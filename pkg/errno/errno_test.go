package errno

import (
	"errors"
	"fmt"
	"testing"
)

func TestConvertErr(t *testing.T) {
	t.Run("ErrNoPassesThrough", func(t *testing.T) {
		got := ConvertErr(RecordNotFoundErr)
		if got.ErrCode != RecordNotFoundErrCode {
			t.Errorf("ConvertErr(RecordNotFoundErr).ErrCode = %d, want %d", got.ErrCode, RecordNotFoundErrCode)
		}
	})

	t.Run("WrappedErrNoUnwraps", func(t *testing.T) {
		// 服务层会用fmt/errors再包一层 As必须能穿透
		wrapped := fmt.Errorf("call failed: %w", ParamErr)
		got := ConvertErr(wrapped)
		if got.ErrCode != ParamErrCode {
			t.Errorf("ConvertErr(wrapped).ErrCode = %d, want %d", got.ErrCode, ParamErrCode)
		}
	})

	t.Run("UnknownErrBecomesServiceErr", func(t *testing.T) {
		got := ConvertErr(errors.New("boom"))
		if got.ErrCode != ServiceErrCode {
			t.Errorf("ConvertErr(plain).ErrCode = %d, want %d", got.ErrCode, ServiceErrCode)
		}
		if got.ErrMsg != "boom" {
			t.Errorf("ConvertErr(plain).ErrMsg = %q, want %q", got.ErrMsg, "boom")
		}
	})
}

func TestWithMessage(t *testing.T) {
	custom := RecordNotFoundErr.WithMessage("video not found")
	if custom.ErrCode != RecordNotFoundErrCode {
		t.Errorf("WithMessage changed code: %d", custom.ErrCode)
	}
	if custom.ErrMsg != "video not found" {
		t.Errorf("WithMessage msg = %q", custom.ErrMsg)
	}
	// 原值不能被改掉
	if RecordNotFoundErr.ErrMsg != "Record not found" {
		t.Errorf("WithMessage mutated the sentinel: %q", RecordNotFoundErr.ErrMsg)
	}
}
