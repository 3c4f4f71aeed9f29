package middleware

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

type Response struct {
	Data  interface{} `json:"data"`
	Error string      `json:"error"`
}

func WriteSuccessData(w http.ResponseWriter, r *http.Request, data interface{}) {
	writeResponse(w, http.StatusOK, Response{
		Data: data,
	})
}

func WriteErrorResponse(w http.ResponseWriter, r *http.Request, errCode int, err string) {
	writeResponse(w, errCode, Response{
		Error: err,
	})
}

func writeResponse(w http.ResponseWriter, code int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = jsoniter.NewEncoder(w).Encode(resp)
}
