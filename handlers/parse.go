package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fintra-backend/extraction"
	"fintra-backend/models"
)

type imagePayload struct {
	Image    string `json:"image"`
	MimeType string `json:"mimeType"`
}

// parseRequest accepts either a single image at the top level or a batch
// under "images". Batches are processed strictly sequentially and each
// image's records are concatenated in submission order.
type parseRequest struct {
	Image    string         `json:"image"`
	MimeType string         `json:"mimeType"`
	Images   []imagePayload `json:"images"`
}

func (r parseRequest) batch() []imagePayload {
	if len(r.Images) > 0 {
		return r.Images
	}
	return []imagePayload{{Image: r.Image, MimeType: r.MimeType}}
}

func (h *Handler) ParsePortfolioImage(c *gin.Context) {
	var req parseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	images := req.batch()
	if len(images) == 1 && images[0].Image == "" {
		badRequest(c, "No image data provided")
		return
	}

	assets := make([]models.Asset, 0)
	for i, img := range images {
		if img.Image == "" {
			continue
		}
		extracted, err := h.Extractor.ExtractAssets(c.Request.Context(), img.Image, img.MimeType)
		if err != nil {
			if errors.Is(err, extraction.ErrNotConfigured) {
				internal(c, "Image parsing is not configured")
				return
			}
			// One bad image degrades its own contribution to empty;
			// the rest of the batch still goes through.
			h.Log.Warn().Err(err).Int("image", i).Msg("portfolio extraction failed")
			continue
		}
		assets = append(assets, extracted...)
	}

	c.JSON(http.StatusOK, gin.H{"assets": assets})
}

func (h *Handler) ParseTradesImage(c *gin.Context) {
	var req parseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	images := req.batch()
	if len(images) == 1 && images[0].Image == "" {
		badRequest(c, "No image data provided")
		return
	}

	trades := make([]models.TradeRecord, 0)
	for i, img := range images {
		if img.Image == "" {
			continue
		}
		extracted, err := h.Extractor.ExtractTrades(c.Request.Context(), img.Image, img.MimeType)
		if err != nil {
			if errors.Is(err, extraction.ErrNotConfigured) {
				internal(c, "Image parsing is not configured")
				return
			}
			h.Log.Warn().Err(err).Int("image", i).Msg("trade extraction failed")
			continue
		}
		trades = append(trades, extracted...)
	}

	c.JSON(http.StatusOK, gin.H{"trades": trades})
}
