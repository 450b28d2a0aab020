package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"authgate/internal/models"
	"authgate/internal/repository"
)

// Auditor records audit trail entries for auth and admin actions.
// Recording is best-effort: a failed write is logged, never surfaced to the
// request.
type Auditor struct {
	repo   repository.AuditRepository
	logger *zap.Logger
}

func NewAuditor(repo repository.AuditRepository, logger *zap.Logger) *Auditor {
	return &Auditor{repo: repo, logger: logger}
}

func (a *Auditor) Record(c *gin.Context, userID, action, resourceType, resourceID string, meta map[string]interface{}) {
	var metaJSON datatypes.JSON
	if meta != nil {
		if b, err := json.Marshal(meta); err == nil {
			metaJSON = datatypes.JSON(b)
		}
	}
	entry := &models.AuditLog{
		UserID:       userID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		Metadata:     metaJSON,
		IP:           c.ClientIP(),
		UserAgent:    c.GetHeader("User-Agent"),
	}
	if err := a.repo.Create(c.Request.Context(), entry); err != nil {
		a.logger.Warn("audit write failed", zap.String("action", action), zap.Error(err))
	}
}

// ListAudit returns the most recent audit entries, newest first.
func ListAudit(audits repository.AuditRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := 20
		if s := c.Query("limit"); s != "" {
			if n, err := strconv.Atoi(s); err == nil && n > 0 && n <= 100 {
				limit = n
			}
		}
		entries, err := audits.FindRecent(c.Request.Context(), limit)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"audit": entries})
	}
}
