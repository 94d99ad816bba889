package catalog

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// DefaultSearchTolerance is the weight-search band used when the
// caller does not pass one.
const DefaultSearchTolerance = 0.15

type Handler struct {
	catalog *Catalog
}

func NewHandler(catalog *Catalog) *Handler {
	return &Handler{catalog: catalog}
}

// --------------------------------------------------
// List products, optionally filtered by unit weight
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	if raw := c.Query("weight"); raw != "" {
		target, err := strconv.ParseFloat(raw, 64)
		if err != nil || target <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "weight must be a positive number"})
			return
		}

		tolerance := DefaultSearchTolerance
		if rawTol := c.Query("tolerance"); rawTol != "" {
			tolerance, err = strconv.ParseFloat(rawTol, 64)
			if err != nil || tolerance < 0 || tolerance > 1 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "tolerance must be between 0 and 1"})
				return
			}
		}

		matches := h.catalog.SearchByWeight(target, tolerance)
		c.JSON(http.StatusOK, gin.H{"count": len(matches), "products": matches})
		return
	}

	products := h.catalog.All()
	c.JSON(http.StatusOK, gin.H{"count": len(products), "products": products})
}

// --------------------------------------------------
// Single product by class id, falling back to name
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	key := c.Param("id")

	if id, err := strconv.Atoi(key); err == nil {
		if p, ok := h.catalog.ByID(id); ok {
			c.JSON(http.StatusOK, p)
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": ErrNotFound.Error()})
		return
	}

	if p, ok := h.catalog.ByName(key); ok {
		c.JSON(http.StatusOK, p)
		return
	}
	c.JSON(http.StatusNotFound, gin.H{"error": ErrNotFound.Error()})
}
