package user

import (
	"io"
	"mime/multipart"
)

type RegisterParam struct {
	UserName string `form:"user_name" query:"user_name"`
	Password string `form:"password" query:"password"`
	Email    string `form:"email" query:"email"`
}

type LoginParam struct {
	UserName string `form:"user_name" query:"user_name" json:"user_name"`
	Password string `form:"password" query:"password" json:"password"`
}

// readFileHeader 把multipart文件整个读进内存 头像这种小文件够用
func readFileHeader(fh *multipart.FileHeader) ([]byte, string, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, "", err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, "", err
	}
	return data, fh.Header.Get("Content-Type"), nil
}
