package oss

import (
	"VidTube.com/config"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

var (
	minioClient *minio.Client
	publicHost  string
)

// InitMinio 由进程入口显式调用 客户端生命周期归main所有
func InitMinio() error {
	cfg := config.ConfigInfo.Minio
	publicHost = cfg.PublicHost

	logrus.Infof("Initializing MinIO client with endpoint: %s, accessKey: %s", cfg.Endpoint, cfg.AccessKey)

	var err error
	minioClient, err = minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		logrus.Errorf("Failed to create MinIO client: %v", err)
		return err
	}

	logrus.Info("Connect Minio Success")
	return nil
}
