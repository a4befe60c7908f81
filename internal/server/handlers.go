package server

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"facelocking/internal/camera"

	"github.com/gin-gonic/gin"
)

// ErrorResponse はエラーレスポンスの共通形式
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// CameraInfo は1台のカメラの情報
type CameraInfo struct {
	Index   int    `json:"index"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Backend string `json:"backend"`
}

// CamerasResponse はカメラ一覧レスポンス
type CamerasResponse struct {
	Cameras   []CameraInfo `json:"cameras"`
	ScanLimit int          `json:"scan_limit"`
	Timestamp time.Time    `json:"timestamp"`
}

// SelectRequest はカメラ選択リクエスト
type SelectRequest struct {
	Policy    string `json:"policy" binding:"required"` // explicit / auto_external / auto_builtin
	Index     *int   `json:"index,omitempty"`           // explicitのときの対象インデックス
	ScanLimit *int   `json:"scan_limit,omitempty"`      // スキャン上限の上書き
}

// SelectResponse はカメラ選択レスポンス
type SelectResponse struct {
	Index     int          `json:"index"`
	Cameras   []CameraInfo `json:"cameras"`
	Timestamp time.Time    `json:"timestamp"`
}

// handleHealth はヘルスチェックエンドポイント
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now(),
	})
}

// handleStatus はステータス確認エンドポイント
func (s *Server) handleStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "running",
		"server": gin.H{
			"host": s.config.Server.Host,
			"port": s.config.Server.Port,
		},
		"scan_limit":    s.config.Camera.ScanLimit,
		"probe_timeout": s.config.Camera.ProbeTimeout.String(),
		"timestamp":     time.Now(),
	})
}

// handleListCameras はカメラ一覧取得エンドポイント
// 毎回新しくスキャンする。デバイスが1台も無いことは正常な結果なので空の一覧を返す
func (s *Server) handleListCameras(c *gin.Context) {
	devices, err := s.discovery.ScanDevices(c.Request.Context(), s.config.Camera.ScanLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:     "scan_failed",
			Message:   "デバイススキャンが中断されました: " + err.Error(),
			Timestamp: time.Now(),
		})
		return
	}

	c.JSON(http.StatusOK, CamerasResponse{
		Cameras:   toCameraInfos(devices),
		ScanLimit: s.config.Camera.ScanLimit,
		Timestamp: time.Now(),
	})
}

// handleGetCamera は単一カメラの情報取得エンドポイント
// 選択ポリシーの明示指定と違い、照会系のこのエンドポイントは動作確認まで行い、
// 動作しないインデックスには404を返す
func (s *Server) handleGetCamera(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:     "invalid_index",
			Message:   "インデックスは整数で指定してください",
			Timestamp: time.Now(),
		})
		return
	}

	result := s.prober.Probe(index)
	if result.Status != camera.ProbeWorking {
		available, scanErr := s.discovery.ScanDevices(c.Request.Context(), s.config.Camera.ScanLimit)
		if scanErr != nil {
			available = nil
		}

		notFound := &camera.DeviceNotFoundError{Index: index, Available: available.Indexes()}
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:     "camera_not_found",
			Message:   notFound.Error(),
			Timestamp: time.Now(),
		})
		return
	}

	c.JSON(http.StatusOK, CameraInfo{
		Index:   result.Index,
		Width:   result.Width,
		Height:  result.Height,
		Backend: result.Backend,
	})
}

// handleSelectCamera はポリシーに基づくカメラ選択エンドポイント
// HTTP経由では対話できないため、interactiveポリシーは即座に失敗する
func (s *Server) handleSelectCamera(c *gin.Context) {
	var req SelectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:     "invalid_request",
			Message:   "リクエストの解析に失敗しました: " + err.Error(),
			Timestamp: time.Now(),
		})
		return
	}

	policy := camera.Policy{Kind: camera.PolicyKind(req.Policy)}
	if policy.Kind == camera.PolicyExplicit {
		if req.Index == nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:     "missing_index",
				Message:   "explicitポリシーにはindexの指定が必要です",
				Timestamp: time.Now(),
			})
			return
		}
		policy.Index = *req.Index
	}

	scanLimit := s.config.Camera.ScanLimit
	if req.ScanLimit != nil && *req.ScanLimit > 0 {
		scanLimit = *req.ScanLimit
	}

	devices, err := s.discovery.ScanDevices(c.Request.Context(), scanLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:     "scan_failed",
			Message:   "デバイススキャンが中断されました: " + err.Error(),
			Timestamp: time.Now(),
		})
		return
	}

	index, err := s.selector.Select(c.Request.Context(), policy, devices)
	if err != nil {
		status := http.StatusBadRequest
		code := "selection_failed"

		switch {
		case errors.Is(err, camera.ErrNoDevicesAvailable):
			status = http.StatusNotFound
			code = "no_devices_available"
		case errors.Is(err, camera.ErrSelectionCancelled):
			code = "interactive_not_supported"
		}

		c.JSON(status, ErrorResponse{
			Error:     code,
			Message:   err.Error(),
			Timestamp: time.Now(),
		})
		return
	}

	c.JSON(http.StatusOK, SelectResponse{
		Index:     index,
		Cameras:   toCameraInfos(devices),
		Timestamp: time.Now(),
	})
}

// toCameraInfos はスキャン結果をレスポンス形式に変換する
func toCameraInfos(devices camera.DeviceList) []CameraInfo {
	cameras := make([]CameraInfo, 0, len(devices))
	for _, d := range devices {
		cameras = append(cameras, CameraInfo{
			Index:   d.Index,
			Width:   d.Width,
			Height:  d.Height,
			Backend: d.Backend,
		})
	}
	return cameras
}
