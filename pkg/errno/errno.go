package errno

import (
	"errors"
	"fmt"
)

const (
	SuccessCode                = 0
	ServiceErrCode             = 10001
	ParamErrCode               = 10002
	AuthorizationFailedErrCode = 10003
	RecordNotFoundErrCode      = 10004
	RecordAlreadyExistErrCode  = 10005
	UploadErrCode              = 10006
	TokenInvailedErrCode       = 10007
)

type ErrNo struct {
	ErrCode int64
	ErrMsg  string
}

func (e ErrNo) Error() string {
	return fmt.Sprintf("err_code=%d, err_msg=%s", e.ErrCode, e.ErrMsg)
}

func NewErrNo(code int64, msg string) ErrNo {
	return ErrNo{ErrCode: code, ErrMsg: msg}
}

func (e ErrNo) WithMessage(msg string) ErrNo {
	e.ErrMsg = msg
	return e
}

var (
	Success                = NewErrNo(SuccessCode, "Success")
	ServiceErr             = NewErrNo(ServiceErrCode, "Service is unable to start successfully")
	ParamErr               = NewErrNo(ParamErrCode, "Wrong Parameter has been given")
	AuthorizationFailedErr = NewErrNo(AuthorizationFailedErrCode, "Authorization failed")
	RecordNotFoundErr      = NewErrNo(RecordNotFoundErrCode, "Record not found")
	RecordAlreadyExistErr  = NewErrNo(RecordAlreadyExistErrCode, "Record already exist")
	UploadErr              = NewErrNo(UploadErrCode, "Upload to media host failed")
	TokenInvailedErr       = NewErrNo(TokenInvailedErrCode, "Token is invailed")
)

// ConvertErr 将任意error转换为ErrNo
func ConvertErr(err error) ErrNo {
	Err := ErrNo{}
	if errors.As(err, &Err) {
		return Err
	}
	s := ServiceErr
	s.ErrMsg = err.Error()
	return s
}
