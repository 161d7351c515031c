package protocol

type None struct{}

type EmptyRequest struct{}

var EmptyMessage = &None{}

type StringMessage struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var SuccessMessage = &StringMessage{Message: "success"}

type ErrorResponse struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

type CommonResponse struct {
	Code int         `json:"code"` //状态码
	Data interface{} `json:"data"` //数据
}

var SuccessResponse = &CommonResponse{Code: 0, Data: "success"}

type Version struct {
	Version string `json:"version"`
}
