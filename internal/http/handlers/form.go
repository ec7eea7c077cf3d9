package handlers

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/leafspace/qr-studio/internal/models"
	"github.com/leafspace/qr-studio/pkg/utils"
)

//go:embed templates/*.html
var templateFS embed.FS

const formTemplate = "index.html"

// Templates parses the HTML pages served by the form handlers.
func Templates() *template.Template {
	return template.Must(template.New("").ParseFS(templateFS, "templates/*.html"))
}

type formPage struct {
	URL      string
	Caption  string
	Image    template.URL
	Filename string
	Error    string
}

// ShowForm renders the empty form with its default inputs.
func (h *QRHandler) ShowForm(c *gin.Context) {
	c.HTML(http.StatusOK, formTemplate, formPage{
		URL:     models.DefaultURL,
		Caption: models.DefaultCaption,
	})
}

// SubmitForm renders the QR code for the submitted inputs and shows it
// inline together with a download link. Both use the same PNG bytes.
func (h *QRHandler) SubmitForm(c *gin.Context) {
	req, err := h.parseRenderRequest(c)
	if err != nil {
		c.HTML(http.StatusBadRequest, formTemplate, formPage{
			URL:     models.DefaultURL,
			Caption: models.DefaultCaption,
			Error:   err.Error(),
		})
		return
	}

	page := formPage{URL: req.URL, Caption: req.Caption}

	result, err := h.render(c, req)
	if err != nil {
		status, message := h.classifyError(err)
		page.Error = message
		c.HTML(status, formTemplate, page)
		return
	}

	// data: URIs are only trusted by html/template when typed explicitly
	page.Image = template.URL(utils.DataURI(result.MimeType, result.PNG))
	page.Filename = result.Filename

	c.Header("Cache-Control", "no-store")
	c.HTML(http.StatusOK, formTemplate, page)
}

// RateLimited re-renders the form when a client submits too often.
func (h *QRHandler) RateLimited(c *gin.Context) {
	page := formPage{
		URL:     c.PostForm("url"),
		Caption: c.PostForm("caption"),
		Error:   "Too many QR codes requested. Please wait a moment and try again.",
	}
	if page.URL == "" {
		page.URL = models.DefaultURL
	}
	c.HTML(http.StatusTooManyRequests, formTemplate, page)
}
