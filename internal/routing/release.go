package routing

import (
	"net/http"

	"github.com/SystemBuilders/ringlist/internal/lockservice"
)

func release(w http.ResponseWriter, r *http.Request, ls *lockservice.SimpleLockService) {
	var req lockservice.LockRequest
	if !decode(w, r, &req) {
		return
	}

	desc := lockservice.NewSimpleDescriptor(req.FileID, req.UserID)
	if err := ls.Release(desc); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Write([]byte("lock released"))
}

func checkReleased(w http.ResponseWriter, r *http.Request, ls *lockservice.SimpleLockService) {
	var req lockservice.LockRequest
	if !decode(w, r, &req) {
		return
	}

	desc := lockservice.NewSimpleDescriptor(req.FileID, "")
	if ls.CheckReleased(desc) {
		w.Write([]byte("checkRelease success"))
		return
	}
	w.Write([]byte("checkRelease failure"))
}
