package judge

import (
	"errors"
	"fmt"
	"log"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TodFrog/product-judge/internal/catalog"
	"github.com/TodFrog/product-judge/internal/loadcell"
	"github.com/TodFrog/product-judge/internal/middleware"
	"github.com/TodFrog/product-judge/internal/vision"
)

// Version is reported by the health endpoint.
const Version = "1.0.0"

type Handler struct {
	engine  *Engine
	catalog *catalog.Catalog
}

func NewHandler(engine *Engine, cat *catalog.Catalog) *Handler {
	return &Handler{engine: engine, catalog: cat}
}

// --------------------------------------------------
// Request / response shapes
// --------------------------------------------------

type detectionInput struct {
	XYXY   []float64 `json:"xyxy" binding:"required,len=4"`
	Conf   float64   `json:"conf" binding:"min=0,max=1"`
	Cls    int       `json:"cls" binding:"min=0"`
	Name   string    `json:"name" binding:"required"`
	Camera string    `json:"camera"`
}

type judgeRequest struct {
	Detections    []detectionInput `json:"detections" binding:"required,dive"`
	DeltaWeight   *float64         `json:"delta_weight" binding:"required"`
	UseHandFilter *bool            `json:"use_hand_filter"`
}

type loadcellRequest struct {
	Detections      []detectionInput `json:"detections" binding:"required,dive"`
	LoadcellWeights []float64        `json:"loadcell_weights" binding:"required,len=10"`
	BaselineWeights []float64        `json:"baseline_weights" binding:"required,len=10"`
	ZoneID          *int             `json:"zone_id" binding:"omitempty,min=0,max=4"`
	UseHandFilter   *bool            `json:"use_hand_filter"`
}

type simulateRequest struct {
	ProductID  int      `json:"product_id" binding:"required,min=1"`
	Count      int      `json:"count" binding:"required,min=1,max=10"`
	Confidence *float64 `json:"confidence" binding:"omitempty,min=0,max=1"`
}

type productOutput struct {
	ProductID  int     `json:"productId"`
	Name       string  `json:"name"`
	Count      int     `json:"count"`
	UnitPrice  int     `json:"unitPrice"`
	TotalPrice int     `json:"totalPrice"`
	Confidence float64 `json:"confidence"`
}

type weightInfoOutput struct {
	Delta     float64 `json:"delta"`
	Explained float64 `json:"explained"`
	Residual  float64 `json:"residual"`
}

type judgeResponse struct {
	Success      bool             `json:"success"`
	Products     []productOutput  `json:"products"`
	TotalPrice   int              `json:"totalPrice"`
	Status       Status           `json:"status"`
	Confidence   float64          `json:"confidence"`
	WeightInfo   weightInfoOutput `json:"weightInfo"`
	ProductCount int              `json:"productCount"`
	IsRemoval    bool             `json:"isRemoval"`
	Timestamp    float64          `json:"timestamp"`
}

// --------------------------------------------------
// Judge from detections and a measured weight change
// --------------------------------------------------
func (h *Handler) Judge(c *gin.Context) {
	var req judgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dets, err := toDetections(req.Detections)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log.Printf("[JUDGE] %s: %d detections, delta=%.1fg, hand_filter=%v",
		middleware.RequestIDFrom(c), len(dets), *req.DeltaWeight, useHandFilter(req.UseHandFilter))

	result := h.engine.Judge(dets, *req.DeltaWeight, useHandFilter(req.UseHandFilter))
	c.JSON(http.StatusOK, toResponse(result))
}

// --------------------------------------------------
// Judge from raw load-cell channels
// --------------------------------------------------
func (h *Handler) JudgeLoadCell(c *gin.Context) {
	var req loadcellRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dets, err := toDetections(req.Detections)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reading, err := loadcell.NewReading(req.LoadcellWeights, req.BaselineWeights)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rid := middleware.RequestIDFrom(c)

	var delta float64
	if req.ZoneID != nil {
		delta, err = reading.ZoneDelta(*req.ZoneID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("[JUDGE] %s: loadcell zone=%d, delta=%.1fg", rid, *req.ZoneID, delta)
	} else {
		delta = reading.TotalDelta()
		if zone, ok := reading.ActiveZone(loadcell.ActiveZoneThresholdG); ok {
			log.Printf("[JUDGE] %s: loadcell active zone %d, using total delta=%.1fg", rid, zone, delta)
		} else {
			log.Printf("[JUDGE] %s: loadcell quiet tray, total delta=%.1fg", rid, delta)
		}
	}

	result := h.engine.Judge(dets, delta, useHandFilter(req.UseHandFilter))
	c.JSON(http.StatusOK, toResponse(result))
}

// --------------------------------------------------
// Simulate a clean pick of product_id x count
// --------------------------------------------------
func (h *Handler) Simulate(c *gin.Context) {
	var req simulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	confidence := 0.8
	if req.Confidence != nil {
		confidence = *req.Confidence
	}

	result, err := h.engine.Simulate(req.ProductID, req.Count, confidence)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toResponse(result))
}

// --------------------------------------------------
// Health
// --------------------------------------------------
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":        "ok",
		"version":       Version,
		"product_count": h.catalog.Count(),
	})
}

// --------------------------------------------------
// Conversions
// --------------------------------------------------

func useHandFilter(flag *bool) bool {
	if flag == nil {
		return true
	}
	return *flag
}

func toDetections(inputs []detectionInput) ([]vision.Detection, error) {
	dets := make([]vision.Detection, 0, len(inputs))
	for i, in := range inputs {
		box := vision.BBox{X1: in.XYXY[0], Y1: in.XYXY[1], X2: in.XYXY[2], Y2: in.XYXY[3]}
		if !box.Valid() {
			return nil, fmt.Errorf("detection %d: bbox corners out of order", i)
		}
		dets = append(dets, vision.Detection{
			ClassID:    in.Cls,
			Name:       in.Name,
			Confidence: in.Conf,
			BBox:       box,
			Camera:     in.Camera,
		})
	}
	return dets, nil
}

// toResponse applies the wire rounding: grams to one decimal,
// confidences to two.
func toResponse(r Result) judgeResponse {
	products := make([]productOutput, 0, len(r.Products))
	for _, p := range r.Products {
		products = append(products, productOutput{
			ProductID:  p.ProductID,
			Name:       p.Name,
			Count:      p.Count,
			UnitPrice:  p.UnitPrice,
			TotalPrice: p.LinePrice,
			Confidence: round2(p.Confidence),
		})
	}

	return judgeResponse{
		Success:    r.IsSuccess(),
		Products:   products,
		TotalPrice: r.TotalPrice,
		Status:     r.Status,
		Confidence: round2(r.Confidence),
		WeightInfo: weightInfoOutput{
			Delta:     round1(r.Weight.Delta),
			Explained: round1(r.Weight.Explained),
			Residual:  round1(r.Weight.Residual),
		},
		ProductCount: r.ProductCount(),
		IsRemoval:    r.IsRemoval(),
		Timestamp:    r.Timestamp,
	}
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
