package handlers

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/frannienails/salon-manager/internal/httperr"
	"github.com/frannienails/salon-manager/internal/httpresp"
	"github.com/frannienails/salon-manager/internal/models"
	"github.com/frannienails/salon-manager/internal/notify"
	"github.com/frannienails/salon-manager/internal/storage"
)

const maxPhotoUploadBytes = 10 << 20

type PhotoHandler struct {
	db       *gorm.DB
	store    *storage.PhotoStore
	notifier *notify.Dispatcher
}

func NewPhotoHandler(db *gorm.DB, store *storage.PhotoStore, notifier *notify.Dispatcher) *PhotoHandler {
	return &PhotoHandler{db: db, store: store, notifier: notifier}
}

// ======================================================
// UPLOAD (CLIENT)
// ======================================================

// Upload recebe multipart (file + clientId) e cria a foto
// em estado pending até a aprovação do salão
func (h *PhotoHandler) Upload(c *gin.Context) {
	var form struct {
		ClientID    uint   `form:"clientId" binding:"required"`
		Description string `form:"description"`
		NailStyle   string `form:"nailStyle"`
	}
	if err := c.ShouldBind(&form); err != nil {
		httperr.BadRequest(c, "invalid_request", "Cliente é obrigatória.")
		return
	}

	var client models.Client
	if err := h.db.First(&client, form.ClientID).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Cliente não encontrada.")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Foto é obrigatória.")
		return
	}
	if fileHeader.Size > maxPhotoUploadBytes {
		httperr.BadRequest(c, "file_too_large", "Foto acima do limite de 10MB.")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_file", "Erro ao ler a foto.")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		httperr.Internal(c, "failed_to_read_file", "Erro ao ler a foto.")
		return
	}

	key, err := h.store.Upload(c.Request.Context(), data)
	if err != nil {
		httperr.Internal(c, "failed_to_store_photo", "Erro ao guardar a foto.")
		return
	}

	photo := models.Photo{
		ClientID:    client.ID,
		ImageURL:    key,
		Description: form.Description,
		NailStyle:   form.NailStyle,
		Status:      "pending",
		UploadedAt:  time.Now(),
	}

	if err := h.db.Create(&photo).Error; err != nil {
		httperr.Internal(c, "failed_to_create_photo", "Erro ao registar a foto.")
		return
	}

	h.notifier.Dispatch(notify.Message{
		Type:     "photo_pending",
		Text:     fmt.Sprintf("Nova foto de %s aguardando aprovação.", client.FullName),
		ClientID: &client.ID,
	})

	httpresp.Created(c, photo)
}

// ======================================================
// MODERATION (ADMIN)
// ======================================================

func (h *PhotoHandler) ListPending(c *gin.Context) {
	var photos []models.Photo
	if err := h.db.
		Preload("Client").
		Where("status = ?", "pending").
		Order("uploaded_at ASC").
		Find(&photos).Error; err != nil {

		httperr.Internal(c, "failed_to_list_photos", "Erro ao carregar fotos.")
		return
	}

	httpresp.List(c, photos)
}

func (h *PhotoHandler) Approve(c *gin.Context) {
	var photo models.Photo
	if err := h.db.Preload("Client").First(&photo, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "photo_not_found", "Foto não encontrada.")
		return
	}

	if photo.Status != "pending" {
		httperr.BadRequest(c, "photo_already_reviewed", "Foto já foi revisada.")
		return
	}

	now := time.Now()
	photo.Status = "approved"
	photo.ApprovedAt = &now

	if err := h.db.Save(&photo).Error; err != nil {
		httperr.Internal(c, "failed_to_update_photo", "Erro ao aprovar a foto.")
		return
	}

	h.notifier.Dispatch(notify.Message{
		Type: "photo_approved",
		Text: fmt.Sprintf(
			"Olá %s! A sua foto foi aprovada e já está na galeria. Frannie NAILS 💅",
			photo.Client.FullName,
		),
		Phone:    photo.Client.PhoneNumber,
		ClientID: &photo.ClientID,
	})

	httpresp.OK(c, photo)
}

// Reject apaga também o objeto no bucket; foto recusada não fica
// guardada
func (h *PhotoHandler) Reject(c *gin.Context) {
	var photo models.Photo
	if err := h.db.Preload("Client").First(&photo, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "photo_not_found", "Foto não encontrada.")
		return
	}

	if photo.Status != "pending" {
		httperr.BadRequest(c, "photo_already_reviewed", "Foto já foi revisada.")
		return
	}

	if err := h.db.Delete(&photo).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_photo", "Erro ao recusar a foto.")
		return
	}

	// registro já removido; se falhar, o objeto órfão fica para limpeza manual
	_ = h.store.Delete(c.Request.Context(), photo.ImageURL)

	h.notifier.Dispatch(notify.Message{
		Type: "photo_rejected",
		Text: fmt.Sprintf(
			"Olá %s! A sua foto não foi aprovada desta vez. Pode tentar outra! Frannie NAILS 💅",
			photo.Client.FullName,
		),
		Phone:    photo.Client.PhoneNumber,
		ClientID: &photo.ClientID,
	})

	httpresp.OK(c, gin.H{"rejected": photo.ID})
}

// ======================================================
// GALLERY
// ======================================================

type galleryPhoto struct {
	models.Photo
	ClientName string `json:"client_name"`
	LikeCount  int64  `json:"like_count"`
}

func (h *PhotoHandler) Gallery(c *gin.Context) {
	var photos []models.Photo
	if err := h.db.
		Preload("Client").
		Where("status = ?", "approved").
		Order("approved_at DESC").
		Find(&photos).Error; err != nil {

		httperr.Internal(c, "failed_to_list_photos", "Erro ao carregar a galeria.")
		return
	}

	out := make([]galleryPhoto, 0, len(photos))
	for _, p := range photos {
		var likes int64
		h.db.Model(&models.Like{}).Where("photo_id = ?", p.ID).Count(&likes)

		out = append(out, galleryPhoto{
			Photo:      p,
			ClientName: p.Client.FullName,
			LikeCount:  likes,
		})
	}

	httpresp.List(c, out)
}

// ======================================================
// LIKES
// ======================================================

// ToggleLike cria ou remove o like da cliente na foto
func (h *PhotoHandler) ToggleLike(c *gin.Context) {
	var body struct {
		ClientID uint `json:"clientId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		httperr.BadRequest(c, "invalid_request", "Cliente é obrigatória.")
		return
	}

	var photo models.Photo
	if err := h.db.First(&photo, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "photo_not_found", "Foto não encontrada.")
		return
	}

	var like models.Like
	err := h.db.
		Where("photo_id = ? AND client_id = ?", photo.ID, body.ClientID).
		First(&like).Error

	switch {
	case err == nil:
		if err := h.db.Delete(&like).Error; err != nil {
			httperr.Internal(c, "failed_to_toggle_like", "Erro ao remover like.")
			return
		}
		httpresp.OK(c, gin.H{"liked": false})

	case errors.Is(err, gorm.ErrRecordNotFound):
		like = models.Like{PhotoID: photo.ID, ClientID: body.ClientID}
		if err := h.db.Create(&like).Error; err != nil {
			httperr.Internal(c, "failed_to_toggle_like", "Erro ao registar like.")
			return
		}
		httpresp.OK(c, gin.H{"liked": true})

	default:
		httperr.Internal(c, "internal_error", "Erro interno.")
	}
}

// ======================================================
// COMMENTS
// ======================================================

func (h *PhotoHandler) CreateComment(c *gin.Context) {
	var body struct {
		ClientID uint   `json:"clientId" binding:"required"`
		Content  string `json:"content" binding:"required,max=500"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		httperr.BadRequest(c, "invalid_request", "Cliente e comentário são obrigatórios.")
		return
	}

	var photo models.Photo
	if err := h.db.First(&photo, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "photo_not_found", "Foto não encontrada.")
		return
	}

	comment := models.Comment{
		PhotoID:  photo.ID,
		ClientID: body.ClientID,
		Content:  body.Content,
	}

	if err := h.db.Create(&comment).Error; err != nil {
		httperr.Internal(c, "failed_to_create_comment", "Erro ao comentar.")
		return
	}

	httpresp.Created(c, comment)
}

func (h *PhotoHandler) ListComments(c *gin.Context) {
	var comments []models.Comment
	if err := h.db.
		Where("photo_id = ?", c.Param("id")).
		Order("created_at ASC").
		Find(&comments).Error; err != nil {

		httperr.Internal(c, "failed_to_list_comments", "Erro ao carregar comentários.")
		return
	}

	httpresp.List(c, comments)
}
