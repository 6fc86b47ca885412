package handlers

import "net/http"

// Test is the unauthenticated liveness endpoint. The body doubles as a CORS
// smoke test for browser clients.
func Test(w http.ResponseWriter, r *http.Request) {
	JSONOK(w, map[string]string{"message": "CORS is working!"})
}

// Health is a plain liveness endpoint for load balancers.
func Health(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("ok"))
}
