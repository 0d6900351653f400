package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/onefitted/fitted/internal/messaging"
	"github.com/onefitted/fitted/internal/middleware"
	"github.com/onefitted/fitted/internal/services"
	"github.com/onefitted/fitted/internal/validation"
	"github.com/onefitted/fitted/pkg/models"
)

type WardrobeHandler struct {
	wardrobe   *services.WardrobeService
	messageBus *messaging.MessageBus
	schemas    *validation.SchemaValidator
	validator  *validator.Validate
	logger     *logrus.Logger
}

func NewWardrobeHandler(
	wardrobe *services.WardrobeService,
	messageBus *messaging.MessageBus,
	schemas *validation.SchemaValidator,
	logger *logrus.Logger,
) *WardrobeHandler {
	return &WardrobeHandler{
		wardrobe:   wardrobe,
		messageBus: messageBus,
		schemas:    schemas,
		validator:  validator.New(),
		logger:     logger,
	}
}

// List returns the caller's full wardrobe snapshot.
func (h *WardrobeHandler) List(c *gin.Context) {
	userID, _, _ := middleware.GetUserFromContext(c)

	items, err := h.wardrobe.GetSnapshot(c.Request.Context(), userID)
	if err != nil {
		h.logger.WithError(err).WithField("user_id", userID).Error("Failed to load wardrobe")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": gin.H{
				"code":    "WARDROBE_LOAD_FAILED",
				"message": "Failed to load wardrobe",
			},
		})
		return
	}

	if items == nil {
		items = []models.ClothingItem{}
	}

	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"total": len(items),
	})
}

// Create validates and persists a new clothing item.
func (h *WardrobeHandler) Create(c *gin.Context) {
	userID, _, _ := middleware.GetUserFromContext(c)

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{
				"code":    "INVALID_BODY",
				"message": "Failed to read request body",
			},
		})
		return
	}

	// Schema validation rejects unknown fields before binding
	if err := h.schemas.ValidateClothingItem(body); err != nil {
		h.logger.WithError(err).Warn("Clothing item failed schema validation")
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{
				"code":    "VALIDATION_FAILED",
				"message": "Clothing item validation failed",
				"details": err.Error(),
			},
		})
		return
	}

	var request models.ClothingItemRequest
	if err := json.Unmarshal(body, &request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{
				"code":    "INVALID_JSON",
				"message": "Invalid JSON format",
				"details": err.Error(),
			},
		})
		return
	}

	if err := h.validator.Struct(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{
				"code":    "VALIDATION_FAILED",
				"message": "Clothing item validation failed",
				"details": err.Error(),
			},
		})
		return
	}

	item, err := h.wardrobe.AddItem(c.Request.Context(), userID, request)
	if err != nil {
		h.logger.WithError(err).WithField("user_id", userID).Error("Failed to add clothing item")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": gin.H{
				"code":    "ITEM_CREATION_FAILED",
				"message": "Failed to add clothing item",
			},
		})
		return
	}

	c.JSON(http.StatusCreated, item)
}

// Wear records that an item was worn. The usage update is applied
// asynchronously by the wear-event consumer.
func (h *WardrobeHandler) Wear(c *gin.Context) {
	userID, _, _ := middleware.GetUserFromContext(c)
	itemID := c.Param("itemId")

	if itemID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{
				"code":    "MISSING_ITEM_ID",
				"message": "Item ID is required",
			},
		})
		return
	}

	event := models.WearEvent{
		UserID: userID,
		ItemID: itemID,
		WornAt: time.Now().UTC(),
		Source: "api",
	}

	if err := h.messageBus.PublishWearEvent(event); err != nil {
		h.logger.WithError(err).WithFields(logrus.Fields{
			"user_id": userID,
			"item_id": itemID,
		}).Error("Failed to publish wear event")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": gin.H{
				"code":    "WEAR_EVENT_FAILED",
				"message": "Failed to record wear event",
			},
		})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"status":  "accepted",
		"item_id": itemID,
		"worn_at": event.WornAt,
	})
}
