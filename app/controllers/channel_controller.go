package controllers

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"

	"github.com/musickeys/backend/app/models"
)

type channelRequest struct {
	Title      string `json:"title"`
	Username   string `json:"username"`
	URL        string `json:"url"`
	IsActive   *bool  `json:"isActive"`
	VideoCount *int   `json:"videoCount"`
}

// HandleListChannels returns all featured YouTube channels.
func HandleListChannels(c *fiber.Ctx) error {
	initServices()

	channels, err := channelRepo().List()
	if err != nil {
		log.Errorf("[Channels] Failed to list channels: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to fetch YouTube channels",
		})
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"channels": channels,
	})
}

// HandleAddChannel registers a new featured channel. The channel id is
// extracted from the URL when possible.
func HandleAddChannel(c *fiber.Ctx) error {
	initServices()

	var req channelRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	if req.Title == "" || req.Username == "" || req.URL == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Missing required fields: title, username, url",
		})
	}

	channelID := extractChannelID(req.URL)
	if channelID == "" {
		channelID = fmt.Sprintf("channel_%d", time.Now().UnixMilli())
	}

	videoCount := 0
	if req.VideoCount != nil {
		videoCount = *req.VideoCount
	}

	channel := &models.Channel{
		ID:         channelID,
		Title:      req.Title,
		Username:   req.Username,
		URL:        req.URL,
		IsActive:   true,
		VideoCount: videoCount,
	}

	if err := channelRepo().Create(channel); err != nil {
		log.Errorf("[Channels] Failed to add channel %s: %v", channelID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to add YouTube channel",
		})
	}

	log.Infof("[Channels] Added channel %s (%s)", channel.ID, channel.Title)
	return c.JSON(fiber.Map{
		"success": true,
		"channel": channel,
		"message": "YouTube channel added successfully",
	})
}

// HandleUpdateChannel patches channel fields. Absent fields keep their
// current values.
func HandleUpdateChannel(c *fiber.Ctx) error {
	initServices()

	id := c.Params("id")

	channel, err := channelRepo().GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"error":   "Channel not found",
			})
		}
		log.Errorf("[Channels] Failed to load channel %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to update YouTube channel",
		})
	}

	var req channelRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	if req.IsActive != nil {
		channel.IsActive = *req.IsActive
	}
	if req.Title != "" {
		channel.Title = req.Title
	}
	if req.Username != "" {
		channel.Username = req.Username
	}
	if req.URL != "" {
		channel.URL = req.URL
	}
	if req.VideoCount != nil {
		channel.VideoCount = *req.VideoCount
	}

	if err := channelRepo().Update(channel); err != nil {
		log.Errorf("[Channels] Failed to update channel %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to update YouTube channel",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"channel": channel,
		"message": "YouTube channel updated successfully",
	})
}

// HandleDeleteChannel removes a featured channel.
func HandleDeleteChannel(c *fiber.Ctx) error {
	initServices()

	id := c.Params("id")

	channel, err := channelRepo().GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"error":   "Channel not found",
			})
		}
		log.Errorf("[Channels] Failed to load channel %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to delete YouTube channel",
		})
	}

	if err := channelRepo().Delete(id); err != nil {
		log.Errorf("[Channels] Failed to delete channel %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to delete YouTube channel",
		})
	}

	log.Infof("[Channels] Deleted channel %s", id)
	return c.JSON(fiber.Map{
		"success":        true,
		"message":        "YouTube channel deleted successfully",
		"deletedChannel": channel,
	})
}

// extractChannelID pulls a channel identifier out of a YouTube URL. Handles
// both @handle and /channel/ style URLs.
func extractChannelID(url string) string {
	if idx := strings.Index(url, "@"); idx != -1 {
		rest := url[idx+1:]
		if slash := strings.Index(rest, "/"); slash != -1 {
			rest = rest[:slash]
		}
		return rest
	}
	if idx := strings.Index(url, "channel/"); idx != -1 {
		rest := url[idx+len("channel/"):]
		if slash := strings.Index(rest, "/"); slash != -1 {
			rest = rest[:slash]
		}
		return rest
	}
	return ""
}
