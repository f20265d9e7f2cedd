package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/vastra/app/services"
	"github.com/shashiranjanraj/vastra/pkg/response"
)

// ProductController serves the public catalog listing.
type ProductController struct {
	service *services.CatalogService
}

func NewProductController(service *services.CatalogService) *ProductController {
	return &ProductController{service: service}
}

// Index lists every product. An empty catalog yields an empty list, not an
// error.
func (c *ProductController) Index(w http.ResponseWriter, r *http.Request) {
	products, err := c.service.List(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}

	response.OK(w, response.M{"products": products})
}
