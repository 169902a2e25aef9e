package serverutils

type ErrorBody struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

func ErrorResponse(code int, message string) ErrorBody {
	return ErrorBody{
		Code:  code,
		Error: message,
	}
}

type MessageBody struct {
	Message string `json:"message"`
}

func MessageResponse(message string) MessageBody {
	return MessageBody{Message: message}
}
