package handlers

import (
	"net/http"

	"rentwise/services/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const maxContractSize = 10 << 20

// ContractHandler uploads signed lease contracts.
type ContractHandler struct {
	Store storage.DocumentStore
}

func NewContractHandler(store storage.DocumentStore) *ContractHandler {
	return &ContractHandler{Store: store}
}

// UploadContractHandler accepts a multipart "file" and returns its durable URL,
// to be passed as contractUrl when assigning the lease.
func (h *ContractHandler) UploadContractHandler(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided", "detail": err.Error()})
		return
	}
	if fileHeader.Size > maxContractSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "contract must be 10 MB or smaller"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read uploaded file", "detail": err.Error()})
		return
	}
	defer file.Close()

	url, err := h.Store.UploadContract(c.Request.Context(), file, fileHeader.Filename, actorID(c))
	if err != nil {
		getLogger(c).Warn("Contract upload failed", zap.String("filename", fileHeader.Filename), zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"url": url})
}
