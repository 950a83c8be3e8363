package handlers

import (
	"testing"

	"VidTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

func TestHttpStatus(t *testing.T) {
	cases := []struct {
		code int64
		want int
	}{
		{errno.SuccessCode, consts.StatusOK},
		{errno.ParamErrCode, consts.StatusBadRequest},
		{errno.AuthorizationFailedErrCode, consts.StatusUnauthorized},
		{errno.TokenInvailedErrCode, consts.StatusUnauthorized},
		{errno.RecordNotFoundErrCode, consts.StatusNotFound},
		{errno.RecordAlreadyExistErrCode, consts.StatusConflict},
		{errno.ServiceErrCode, consts.StatusInternalServerError},
		{errno.UploadErrCode, consts.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := httpStatus(c.code); got != c.want {
			t.Errorf("httpStatus(%d) = %d, want %d", c.code, got, c.want)
		}
	}
}
