package controllers

import (
	"fmt"
	"net/http"
	"net/url"

	"factory-monitor-service/internal/domain/services"
	"factory-monitor-service/internal/domain/services/container"
	"factory-monitor-service/internal/error/code"
	"factory-monitor-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// FileController 處理上傳、報表與下載
type FileController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewFileController 建立檔案控制器
func NewFileController(ctx *gin.Context, container *container.ServiceContainer) *FileController {
	return &FileController{Ctx: ctx, Container: container}
}

// FileRequest 依檔名取檔
type FileRequest struct {
	FileName string `json:"fileName" form:"fileName" binding:"required"`
}

// HandleFileFunc 回傳處理檔案請求的 gin handler
func HandleFileFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewFileController(ctx, container)

		switch method {
		case "upload":
			controller.Upload()
		case "generateReport":
			controller.GenerateReport()
		case "viewReport":
			controller.Serve("inline")
		case "download":
			controller.Serve("attachment")
		default:
			invalidMethod(ctx)
		}
	}
}

func (c *FileController) fileService() services.InterfaceFileService {
	return c.Container.GetService(container.ServiceFile).(services.InterfaceFileService)
}

// Upload 上傳檔案 (multipart 欄位 files 或 file)
// @Summary      Upload files
// @Tags         Files
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        files formData file true "Files"
// @Success      200  {object}  IsSuccessResponse{Result=[]services.UploadedFile}
// @Failure      400  {object}  IsSuccessResponse
// @Router       /UploadController [post]
func (c *FileController) Upload() {
	c.Ctx.Request.Body = http.MaxBytesReader(c.Ctx.Writer, c.Ctx.Request.Body, 5*services.MaxUploadSize)
	form, err := c.Ctx.MultipartForm()
	if err != nil {
		response.Error(c.Ctx, code.Wrap(code.ErrFileUpload, err))
		return
	}
	files := append(form.File["files"], form.File["file"]...)

	saved, err := c.fileService().Save(files)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, saved)
}

// GenerateReport 產生月報表，回傳檔名
// @Summary      Generate alert report
// @Tags         Files
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body services.ReportRequest false "Month and filters"
// @Success      200  {object}  IsSuccessResponse{Result=services.ReportResult}
// @Router       /PrintServerController/ReportViewer [post]
func (c *FileController) GenerateReport() {
	var req services.ReportRequest
	if !bindFilter(c.Ctx, &req) {
		return
	}
	reportService := c.Container.GetService(container.ServiceReport).(services.InterfaceReportService)
	result, err := reportService.Generate(c.Ctx.Request.Context(), req)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, result)
}

// Serve 依檔名輸出檔案，disposition 為 inline 或 attachment
// @Summary      Get file
// @Tags         Files
// @Produce      octet-stream
// @Security     BearerAuth
// @Param        fileName query string true "File name"
// @Success      200  {file}  file
// @Failure      400  {object}  IsSuccessResponse
// @Failure      404  {object}  IsSuccessResponse
// @Router       /PrintServerController/DownloadFile [get]
// @Router       /PrintServerController/DownloadFile [post]
// @Router       /PrintServerController/ReportViewer [get]
func (c *FileController) Serve(disposition string) {
	var req FileRequest
	if !bindFilter(c.Ctx, &req) {
		return
	}

	f, info, err := c.fileService().Open(req.FileName)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	defer f.Close()

	c.Ctx.Header("Content-Disposition", fmt.Sprintf("%s; filename*=UTF-8''%s", disposition, url.PathEscape(info.Name())))
	http.ServeContent(c.Ctx.Writer, c.Ctx.Request, info.Name(), info.ModTime(), f)
}
