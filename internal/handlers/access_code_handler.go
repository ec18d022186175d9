package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/frannienails/salon-manager/internal/httperr"
	"github.com/frannienails/salon-manager/internal/httpresp"
	"github.com/frannienails/salon-manager/internal/models"
)

type AccessCodeHandler struct {
	db *gorm.DB
}

func NewAccessCodeHandler(db *gorm.DB) *AccessCodeHandler {
	return &AccessCodeHandler{db: db}
}

// Generate cria um código curto para a cliente digitar no
// primeiro acesso
func (h *AccessCodeHandler) Generate(c *gin.Context) {
	code := models.AccessCode{
		UniqueCode: newAccessCode(),
	}

	if err := h.db.Create(&code).Error; err != nil {
		httperr.Internal(c, "failed_to_create_access_code", "Erro ao gerar código.")
		return
	}

	httpresp.Created(c, code)
}

func (h *AccessCodeHandler) List(c *gin.Context) {
	q := h.db.Session(&gorm.Session{})

	if c.Query("unused") == "true" {
		q = q.Where("used_by_client_id IS NULL")
	}

	var codes []models.AccessCode
	if err := q.
		Order("created_at DESC").
		Find(&codes).Error; err != nil {

		httperr.Internal(c, "failed_to_list_access_codes", "Erro ao carregar códigos.")
		return
	}

	httpresp.List(c, codes)
}

// Delete só remove códigos ainda não usados
func (h *AccessCodeHandler) Delete(c *gin.Context) {
	var code models.AccessCode
	if err := h.db.First(&code, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "access_code_not_found", "Código não encontrado.")
		return
	}

	if code.UsedByClientID != nil {
		httperr.BadRequest(c, "access_code_used", "Código já foi usado por uma cliente.")
		return
	}

	if err := h.db.Delete(&code).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_access_code", "Erro ao remover código.")
		return
	}

	httpresp.OK(c, gin.H{"deleted": code.ID})
}

// fragmento de uuid em maiúsculas, fácil de ditar por telefone
func newAccessCode() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(raw[:8])
}
