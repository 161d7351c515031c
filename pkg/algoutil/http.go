//Package algoutil contain some scaffold helpers for the http service
package algoutil

import (
	"encoding/json"
	"net/http"
)

type optionsReply struct {
	Code int    `json:"code"`
	Data string `json:"data"`
}

// AccessControl allows browser clients from any origin to query the api.
func AccessControl(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		h.ServeHTTP(w, r)
	})
}

// OptionControl answers preflight requests without reaching the handler.
func OptionControl(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(optionsReply{Code: 0, Data: "success"})
			return
		}

		h.ServeHTTP(w, r)
	})
}
