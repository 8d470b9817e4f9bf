package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ministore/storefront/dto"
	"github.com/ministore/storefront/models"
	"github.com/ministore/storefront/store"
	"github.com/ministore/storefront/utils"
)

func GetProducts(products store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := products.ListProducts(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"products": list,
		})
	}
}

// AddProduct assigns the id and slug server-side and appends the record.
// A backing-store failure is logged, not surfaced; the sheet is
// fire-and-forget and a success response does not guarantee durability.
func AddProduct(products store.ProductStore, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.CreateProductDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		product := models.Product{
			ID:              fmt.Sprintf("%d", time.Now().UnixMilli()),
			Name:            body.Name,
			Description:     body.Description,
			FullDescription: body.FullDescription,
			Price:           body.Price,
			SellPrice:       body.SellPrice,
			Image:           body.Image,
			Images:          body.Images,
			Slug:            utils.GenerateSlug(body.Name),
			Features:        body.Features,
		}
		normalizeImages(&product)
		if product.SellPrice.IsZero() {
			product.SellPrice = product.Price
		}

		if err := products.CreateProduct(c.Request.Context(), product); err != nil {
			log.Error("product not persisted", zap.String("id", product.ID), zap.Error(err))
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"product": product,
		})
	}
}

func UpdateProduct(products store.ProductStore, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.UpdateProductDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		product := models.Product{
			ID:              body.ID,
			Name:            body.Name,
			Description:     body.Description,
			FullDescription: body.FullDescription,
			Price:           body.Price,
			SellPrice:       body.SellPrice,
			Image:           body.Image,
			Images:          body.Images,
			Slug:            body.Slug,
			Features:        body.Features,
		}
		if product.Slug == "" {
			product.Slug = utils.GenerateSlug(product.Name)
		}
		normalizeImages(&product)

		if err := products.UpdateProduct(c.Request.Context(), product); err != nil {
			log.Error("product update not persisted", zap.String("id", product.ID), zap.Error(err))
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"product": product,
		})
	}
}

func DeleteProduct(products store.ProductStore, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.Query("id"))
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing id"})
			return
		}

		if err := products.DeleteProduct(c.Request.Context(), id); err != nil {
			log.Error("product delete not persisted", zap.String("id", id), zap.Error(err))
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Product deleted",
		})
	}
}

// UploadProductImages stores admin-submitted images and returns their public
// URLs for use in a product record.
func UploadProductImages(r2 *utils.R2Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if r2 == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image storage not configured"})
			return
		}

		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid multipart form"})
			return
		}
		files := form.File["images"]
		productSlug := utils.GenerateSlug(c.PostForm("name"))
		if productSlug == "" {
			productSlug = "unnamed"
		}

		urls, err := r2.UploadProductImages(c.Request.Context(), productSlug, files)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"urls":    urls,
		})
	}
}

// normalizeImages keeps image and images consistent: images is never empty
// when a singular image was supplied, and image is always images[0].
func normalizeImages(p *models.Product) {
	if len(p.Images) == 0 && p.Image != "" {
		p.Images = []string{p.Image}
	}
	if len(p.Images) > 0 {
		p.Image = p.Images[0]
	}
}
