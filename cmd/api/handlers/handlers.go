package handlers

import (
	"VidTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type Response struct {
	Code    int64       `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// Pagination 列表响应统一携带的分页元数据
type Pagination struct {
	CurrentPage int64 `json:"current_page"`
	TotalPages  int64 `json:"total_pages"`
	Total       int64 `json:"total"`
}

// SendResponse pack response
func SendResponse(c *app.RequestContext, err error, data interface{}) {
	Err := errno.ConvertErr(err)
	c.JSON(httpStatus(Err.ErrCode), Response{
		Code:    Err.ErrCode,
		Message: Err.ErrMsg,
		Data:    data,
	})
}

// httpStatus 业务码到HTTP状态码 envelope里的code才是对客户端的契约
func httpStatus(code int64) int {
	switch code {
	case errno.SuccessCode:
		return consts.StatusOK
	case errno.ParamErrCode:
		return consts.StatusBadRequest
	case errno.AuthorizationFailedErrCode, errno.TokenInvailedErrCode:
		return consts.StatusUnauthorized
	case errno.RecordNotFoundErrCode:
		return consts.StatusNotFound
	case errno.RecordAlreadyExistErrCode:
		return consts.StatusConflict
	default:
		return consts.StatusInternalServerError
	}
}
