package media_controller

import (
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/Nautica-Marine/nautica-store-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/go-resty/resty/v2"
)

var proxyClient = resty.New().SetTimeout(15 * time.Second)

// ImageProxy godoc
// @Summary Proxy an external image
// @Description Fetches an image from an external host so brand/product images load without CORS issues
// @Tags Storefront - Media
// @Produce octet-stream
// @Param url query string true "Image URL (http or https)"
// @Success 200 "Image bytes"
// @Failure 400 {object} models.ApiResponse
// @Failure 502 {object} models.ApiResponse
// @Router /image-proxy [get]
func ImageProxy(c *gin.Context) {
	rawURL := c.Query("url")
	if rawURL == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "URL parameter is required"))
		return
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid URL"))
		return
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid protocol"))
		return
	}

	resp, err := proxyClient.R().SetContext(c.Request.Context()).Get(parsed.String())
	if err != nil {
		log.Printf("[store.image-proxy] fetch failed for %s: %v", parsed.Host, err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to fetch image"))
		return
	}
	if resp.StatusCode() != http.StatusOK {
		c.JSON(resp.StatusCode(), models.ErrorResponse(c, "Failed to fetch image"))
		return
	}

	contentType := resp.Header().Get("Content-Type")
	if contentType == "" {
		contentType = "image/png"
	}

	c.Header("Cache-Control", "public, max-age=86400") // cache for 1 day
	c.Data(http.StatusOK, contentType, resp.Body())
}
