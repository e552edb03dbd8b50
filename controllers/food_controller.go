package controllers

import (
	"net/http"

	"foodlog/services"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	catalog *services.FoodCatalogService
}

func NewFoodController(catalog *services.FoodCatalogService) *FoodController {
	return &FoodController{catalog: catalog}
}

// GetByName serves exact-name catalog lookups for client display.
func (fc *FoodController) GetByName(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name query parameter is required"})
		return
	}

	food, err := fc.catalog.FindByName(name)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "food not found"})
		return
	}
	c.JSON(http.StatusOK, food)
}
