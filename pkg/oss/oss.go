package oss

import (
	"bytes"
	"context"
	"fmt"

	"VidTube.com/pkg/constants"
	"github.com/minio/minio-go/v7"
)

const location = "us-east-1"

func ensureBucket(ctx context.Context, bucketName string) error {
	exists, err := minioClient.BucketExists(ctx, bucketName)
	if err != nil {
		return fmt.Errorf("check bucket error: %w", err)
	}
	if !exists {
		if err := minioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: location}); err != nil {
			return fmt.Errorf("create bucket error: %w", err)
		}
	}
	return nil
}

func objectURL(bucketName, objectName string) string {
	return fmt.Sprintf("http://%s/%s/%s", publicHost, bucketName, objectName)
}

// UploadVideo 上传本地临时文件 返回可访问的URL
// 临时文件的清理归调用方 无论成败都要删
func UploadVideo(ctx context.Context, path, vid string) (string, error) {
	if err := ensureBucket(ctx, constants.VideoBucket); err != nil {
		return "", err
	}
	objectName := "video/" + vid + "/video.mp4"
	_, err := minioClient.FPutObject(ctx, constants.VideoBucket, objectName, path,
		minio.PutObjectOptions{ContentType: "video/mp4"})
	if err != nil {
		return "", err
	}
	return objectURL(constants.VideoBucket, objectName), nil
}

func UploadVideoCover(ctx context.Context, path, vid string) (string, error) {
	if err := ensureBucket(ctx, constants.PictureBucket); err != nil {
		return "", err
	}
	objectName := "cover/" + vid + "/cover.jpg"
	_, err := minioClient.FPutObject(ctx, constants.PictureBucket, objectName, path,
		minio.PutObjectOptions{ContentType: "image/jpeg"})
	if err != nil {
		return "", err
	}
	return objectURL(constants.PictureBucket, objectName), nil
}

// UploadAvatar 覆盖同名对象 一个用户只保留一份头像
func UploadAvatar(ctx context.Context, data []byte, uid string, contentType string) (string, error) {
	if err := ensureBucket(ctx, constants.PictureBucket); err != nil {
		return "", err
	}
	var suffix string
	switch contentType {
	case "image/jpeg", "image/jpg":
		suffix = ".jpg"
	case "image/png":
		suffix = ".png"
	default:
		return "", fmt.Errorf("unsupported image format: %s", contentType)
	}
	objectName := "avatar/" + uid + suffix
	_, err := minioClient.PutObject(ctx, constants.PictureBucket, objectName,
		bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", err
	}
	return objectURL(constants.PictureBucket, objectName), nil
}

// RemoveVideo 删除视频对象与封面 删除失败只记录不阻塞
func RemoveVideo(ctx context.Context, vid string) error {
	objectName := "video/" + vid + "/video.mp4"
	if err := minioClient.RemoveObject(ctx, constants.VideoBucket, objectName, minio.RemoveObjectOptions{}); err != nil {
		return err
	}
	coverName := "cover/" + vid + "/cover.jpg"
	return minioClient.RemoveObject(ctx, constants.PictureBucket, coverName, minio.RemoveObjectOptions{})
}
