// Package response 定义知识库服务 HTTP 接口的统一响应包体与业务错误码。
// 所有接口都返回 HTTP 200，业务结果通过 code 字段区分。
package response

type ResponseCode int

// 统一业务代码
const (
	Success = 100
)

type Response struct {
	Message string       `json:"message"`
	Code    ResponseCode `json:"code"`
	Data    any          `json:"data"`
}

func SuccessResponse(data any) Response {
	return Response{
		Message: "success",
		Code:    Success,
		Data:    data,
	}
}

func ErrorResponse(code ResponseCode, msg string) Response {
	return Response{
		Message: msg,
		Code:    code,
		Data:    nil,
	}
}
