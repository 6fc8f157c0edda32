package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oremod/oremod/shared/api"
	"github.com/oremod/oremod/shared/utils"
)

func (h *Handler) GetThread(w http.ResponseWriter, r *http.Request) {
	threadIdStr := chi.URLParam(r, "thread")
	threadId, err := parseIntParam(threadIdStr, "thread ID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	thread, err := h.thread.Get(threadId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	response := api.ThreadResponse{Thread: thread}
	writeJSON(w, response)
}

// GetThreads serves the query-parameter flavor of bulk retrieval:
// /v1/threads?ids=1,2,3
func (h *Handler) GetThreads(w http.ResponseWriter, r *http.Request) {
	ids, err := parseIdList(r.URL.Query().Get("ids"), "thread ID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	threads, err := h.thread.GetMany(ids)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.ThreadsResponse{Threads: threads})
}

// GetThreadsBatch serves the JSON-body flavor for batches too large to fit
// comfortably in a query string.
func (h *Handler) GetThreadsBatch(w http.ResponseWriter, r *http.Request) {
	var body api.ThreadsBatchRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	threads, err := h.thread.GetMany(body.Ids)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.ThreadsResponse{Threads: threads})
}
