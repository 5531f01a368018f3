package dto

// Res is the uniform response envelope for every endpoint.
type Res struct {
	ResponseCode    string      `json:"responseCode"`
	ResponseMessage string      `json:"responseMessage"`
	Data            interface{} `json:"data,omitempty"`
}

func OK(data interface{}) Res {
	return Res{ResponseCode: "200", ResponseMessage: "Success", Data: data}
}
