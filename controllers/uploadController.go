package controllers

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/Jorell/stylehaven-api/logger"
	"github.com/Jorell/stylehaven-api/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UploadController struct {
	Products *models.ProductModel
}

func NewUploadController(products *models.ProductModel) *UploadController {
	return &UploadController{Products: products}
}

func getAWSUploader(ctx context.Context) (*manager.Uploader, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg)
	return manager.NewUploader(client), nil
}

// UploadProductImages stores product images in S3 and records the first
// uploaded URL as the product's image.
func (c *UploadController) UploadProductImages(ctx *gin.Context) {
	form, err := ctx.MultipartForm()
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "invalid form data")
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, "no files uploaded")
		return
	}

	productID := ctx.PostForm("productId")
	if productID == "" {
		sendErrorResponse(ctx, http.StatusBadRequest, "missing productId")
		return
	}

	reqCtx := ctx.Request.Context()
	if _, err := c.Products.Get(reqCtx, productID); err != nil {
		respondWithError(ctx, err, "upload product images failed")
		return
	}

	bucket := os.Getenv("S3_BUCKET")
	if bucket == "" {
		logger.L().Error("S3_BUCKET environment variable not set")
		sendErrorResponse(ctx, http.StatusInternalServerError, "server error")
		return
	}

	uploader, err := getAWSUploader(reqCtx)
	if err != nil {
		logger.L().Error("AWS configuration failed", zap.Error(err))
		sendErrorResponse(ctx, http.StatusInternalServerError, "server error")
		return
	}

	var uploadedURLs []string
	var failedUploads []string

	for _, file := range files {
		f, openErr := file.Open()
		if openErr != nil {
			logger.L().Warn("error opening upload", zap.String("file", file.Filename), zap.Error(openErr))
			failedUploads = append(failedUploads, file.Filename)
			continue
		}

		// Unique key so concurrent uploads cannot overwrite each other.
		key := fmt.Sprintf("%s-%s-%s", productID, time.Now().Format("20060102150405"), file.Filename)

		result, uploadErr := uploader.Upload(reqCtx, &s3.PutObjectInput{
			Bucket:      aws.String(bucket),
			Key:         aws.String(key),
			Body:        f,
			ACL:         "public-read",
			ContentType: aws.String(file.Header.Get("Content-Type")),
		})
		f.Close()

		if uploadErr != nil {
			logger.L().Warn("error uploading file", zap.String("file", file.Filename), zap.Error(uploadErr))
			failedUploads = append(failedUploads, file.Filename)
			continue
		}

		uploadedURLs = append(uploadedURLs, result.Location)
	}

	if len(uploadedURLs) > 0 {
		image := uploadedURLs[0]
		if _, err := c.Products.Update(reqCtx, productID, models.ProductInput{Image: &image}); err != nil {
			logger.L().Warn("failed to save product image",
				zap.String("productId", productID),
				zap.Error(err),
			)
		}
	}

	response := gin.H{
		"success": true,
		"message": "Files processed",
		"urls":    uploadedURLs,
	}
	if len(failedUploads) > 0 {
		response["failed"] = failedUploads
	}

	sendJSONResponse(ctx, http.StatusOK, response)
}
