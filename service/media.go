package service

import (
	"context"
	"fmt"
	"image"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"playtube/config"
	"playtube/pkg/log"
	"playtube/pkg/response"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
	"github.com/google/uuid"
	"go.uber.org/zap"

	_ "golang.org/x/image/webp" // webp 的 DecodeConfig 注册
	_ "image/jpeg"
	_ "image/png"
)

var _ IMediaService = (*MediaService)(nil)

// IMediaService 外部媒体存储 上传/删除 两阶段操作的底座
// 调用方约定 先上传新对象 记录落库成功后再删旧对象
type IMediaService interface {
	UploadImage(ctx context.Context, header *multipart.FileHeader, folder string) (string, error)
	UploadVideo(ctx context.Context, header *multipart.FileHeader, folder string) (string, error)
	Delete(ctx context.Context, fileURL string) error
}

type MediaService struct {
	Client *oss.Client
	Conf   *config.OssConfig
}

const (
	maxImageSize int64 = 10 << 20  // 10MB
	maxVideoSize int64 = 512 << 20 // 512MB
)

var allowedImageMime = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

var allowedVideoMime = map[string]string{
	"video/mp4":  ".mp4",
	"video/webm": ".webm",
}

// UploadImage 校验并上传图片 返回可访问 URL
func (s *MediaService) UploadImage(ctx context.Context, header *multipart.FileHeader, folder string) (string, error) {
	if header == nil {
		return "", response.BadRequest("缺少图片文件")
	}
	if header.Size <= 0 || header.Size > maxImageSize {
		return "", response.BadRequest("图片大小超出限制")
	}

	f, err := header.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	seeker, ok := f.(io.ReadSeeker)
	if !ok {
		return "", fmt.Errorf("uploaded file is not seekable")
	}

	// MIME 校验（读取前 512 bytes）
	head := make([]byte, 512)
	n, _ := seeker.Read(head)
	contentType := http.DetectContentType(head[:n])
	ext, ok := allowedImageMime[contentType]
	if !ok {
		return "", response.BadRequest("不支持的图片类型: " + contentType)
	}
	_, _ = seeker.Seek(0, io.SeekStart)

	// 读取尺寸校验完整性（不解码全图）
	if _, _, err := image.DecodeConfig(seeker); err != nil {
		return "", response.BadRequest("图片文件无法解析")
	}
	_, _ = seeker.Seek(0, io.SeekStart)

	return s.put(ctx, seeker, folder, ext, maxImageSize)
}

// UploadVideo 校验并上传视频文件 返回可访问 URL
func (s *MediaService) UploadVideo(ctx context.Context, header *multipart.FileHeader, folder string) (string, error) {
	if header == nil {
		return "", response.BadRequest("缺少视频文件")
	}
	if header.Size <= 0 || header.Size > maxVideoSize {
		return "", response.BadRequest("视频大小超出限制")
	}

	f, err := header.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	seeker, ok := f.(io.ReadSeeker)
	if !ok {
		return "", fmt.Errorf("uploaded file is not seekable")
	}

	head := make([]byte, 512)
	n, _ := seeker.Read(head)
	contentType := http.DetectContentType(head[:n])
	ext, ok := allowedVideoMime[contentType]
	if !ok {
		return "", response.BadRequest("不支持的视频类型: " + contentType)
	}
	_, _ = seeker.Seek(0, io.SeekStart)

	return s.put(ctx, seeker, folder, ext, maxVideoSize)
}

func (s *MediaService) put(ctx context.Context, reader io.Reader, folder, ext string, maxSize int64) (string, error) {
	objectKey := fmt.Sprintf("%s/%s/%s%s",
		folder,
		time.Now().Format("2006/01/02"),
		uuid.NewString(),
		ext,
	)

	limited := io.LimitReader(reader, maxSize+1)
	if _, err := s.Client.PutObject(ctx, &oss.PutObjectRequest{
		Bucket: oss.Ptr(s.Conf.Bucket),
		Key:    oss.Ptr(objectKey),
		Body:   limited,
	}); err != nil {
		return "", err
	}

	return s.Conf.BaseURL + objectKey, nil
}

// Delete 按 URL 删除对象 非本桶 URL 直接忽略
func (s *MediaService) Delete(ctx context.Context, fileURL string) error {
	if fileURL == "" {
		return nil
	}
	objectKey := strings.TrimPrefix(fileURL, s.Conf.BaseURL)
	if objectKey == fileURL {
		log.L.Warn("skip deleting foreign media url", zap.String("url", fileURL))
		return nil
	}

	_, err := s.Client.DeleteObject(ctx, &oss.DeleteObjectRequest{
		Bucket: oss.Ptr(s.Conf.Bucket),
		Key:    oss.Ptr(objectKey),
	})
	return err
}

func NewMediaService(client *oss.Client, conf *config.OssConfig) IMediaService {
	return &MediaService{
		Client: client,
		Conf:   conf,
	}
}
