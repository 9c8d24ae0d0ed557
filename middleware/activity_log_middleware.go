package middleware

import (
	"encoding/json"
	"log"
	"strings"

	"github.com/Nautica-Marine/nautica-store-backend/config"
	"github.com/Nautica-Marine/nautica-store-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// pathToResourceType maps URL path segments to resource types
var pathToResourceType = map[string]string{
	"products":             models.ResourceTypeProduct,
	"brands":               models.ResourceTypeBrand,
	"orders":               models.ResourceTypeOrder,
	"queries":              models.ResourceTypeQuery,
	"model-specifications": models.ResourceTypeModelSpec,
	"settings":             models.ResourceTypeSetting,
}

// methodToActionVerb maps HTTP methods to action verbs
var methodToActionVerb = map[string]string{
	"POST":   "created",
	"PATCH":  "updated",
	"PUT":    "updated",
	"DELETE": "deleted",
}

// ActivityLoggingMiddleware logs admin mutations automatically.
// Must be used AFTER AdminAuthMiddleware (which sets adminID and adminUsername).
func ActivityLoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Only non-GET requests are logged
		if c.Request.Method == "GET" {
			c.Next()
			return
		}

		adminID, hasID := GetAdminIDFromContext(c)
		adminUsername, hasName := GetAdminUsernameFromContext(c)
		if !hasID || !hasName {
			log.Printf("[activity-logging] warning: admin info not in context")
			c.Next()
			return
		}

		resourceType := extractResourceType(c.Request.URL.Path)
		actionVerb := methodToActionVerb[c.Request.Method]
		if resourceType == "" || actionVerb == "" {
			c.Next()
			return
		}

		resourceID := c.Param("id")

		// Run the handler first so we log the real outcome
		c.Next()

		status := "success"
		if c.Writer.Status() >= 400 {
			status = "failed"
		}

		changes := map[string]interface{}{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"http_status": c.Writer.Status(),
		}
		changesJSON, _ := json.Marshal(changes)

		entry := models.ActivityLog{
			ID:           uuid.Must(uuid.NewV7()),
			AdminID:      adminID,
			AdminName:    adminUsername,
			Action:       actionVerb + "_" + resourceType,
			ResourceType: resourceType,
			ResourceID:   resourceID,
			Changes:      datatypes.JSON(changesJSON),
			Status:       status,
			IPAddress:    c.ClientIP(),
			UserAgent:    c.Request.UserAgent(),
		}

		ctx, cancel := config.WithTimeout()
		defer cancel()
		if err := config.StoreGorm.WithContext(ctx).Create(&entry).Error; err != nil {
			log.Printf("[activity-logging] failed to write log: %v", err)
		}
	}
}

// extractResourceType finds the first known resource segment in the path.
func extractResourceType(path string) string {
	for _, segment := range strings.Split(path, "/") {
		if rt, ok := pathToResourceType[segment]; ok {
			return rt
		}
	}
	return ""
}
