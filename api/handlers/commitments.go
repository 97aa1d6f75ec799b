package handlers

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gorilla/mux"

	"github.com/hyphalabs/crosschain-resolver/privacy"
	"github.com/hyphalabs/crosschain-resolver/resolver"
)

type OrderCommitter interface {
	CommitOrder(commitHash common.Hash, revealDelay time.Duration) (*privacy.OrderCommitment, error)
	RevealAndScheduleOrder(orderData []byte, nonce common.Hash, executionDelay time.Duration) (*privacy.DelayedOrder, error)
	ExecuteDelayedOrder(ctx context.Context, orderHash common.Hash) (resolver.Swap, error)
}

type CommitBody struct {
	CommitHash         string `json:"commitHash"`
	RevealDelaySeconds uint64 `json:"revealDelaySeconds"`
}

type CommitResponse struct {
	CommitHash  string    `json:"commitHash"`
	RevealAfter time.Time `json:"revealAfter"`
	ExpireAfter time.Time `json:"expireAfter"`
}

type RevealBody struct {
	OrderData             string `json:"orderData"`
	Nonce                 string `json:"nonce"`
	ExecutionDelaySeconds uint64 `json:"executionDelaySeconds"`
}

type RevealResponse struct {
	OrderHash    string    `json:"orderHash"`
	ExecuteAfter time.Time `json:"executeAfter"`
}

type CommitmentsHandler struct {
	committer OrderCommitter
}

func NewCommitmentsHandler(committer OrderCommitter) *CommitmentsHandler {
	return &CommitmentsHandler{
		committer: committer,
	}
}

// HandleCommit publishes an opaque order commitment.
func (h *CommitmentsHandler) HandleCommit(w http.ResponseWriter, r *http.Request) {
	b := &CommitBody{}
	d := json.NewDecoder(r.Body)
	if err := d.Decode(b); err != nil {
		JSONError(w, fmt.Errorf("invalid request body: %s", err), http.StatusBadRequest)
		return
	}
	commitHash, err := parseHash(b.CommitHash, "commitHash")
	if err != nil {
		JSONError(w, err, http.StatusBadRequest)
		return
	}

	c, err := h.committer.CommitOrder(commitHash, time.Duration(b.RevealDelaySeconds)*time.Second)
	if err != nil {
		code := http.StatusBadRequest
		if errors.Is(err, privacy.ErrCommitmentExists) {
			code = http.StatusConflict
		}
		JSONError(w, err, code)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(CommitResponse{
		CommitHash:  c.CommitHash.Hex(),
		RevealAfter: c.RevealAfter,
		ExpireAfter: c.ExpireAfter,
	})
}

// HandleReveal opens a commitment with the original payload and nonce and
// schedules the decoded order for delayed execution.
func (h *CommitmentsHandler) HandleReveal(w http.ResponseWriter, r *http.Request) {
	b := &RevealBody{}
	d := json.NewDecoder(r.Body)
	if err := d.Decode(b); err != nil {
		JSONError(w, fmt.Errorf("invalid request body: %s", err), http.StatusBadRequest)
		return
	}
	orderData, err := hex.DecodeString(strings.TrimPrefix(b.OrderData, "0x"))
	if err != nil || len(orderData) == 0 {
		JSONError(w, fmt.Errorf("field 'orderData' invalid"), http.StatusBadRequest)
		return
	}
	nonce, err := parseHash(b.Nonce, "nonce")
	if err != nil {
		JSONError(w, err, http.StatusBadRequest)
		return
	}

	delayed, err := h.committer.RevealAndScheduleOrder(orderData, nonce, time.Duration(b.ExecutionDelaySeconds)*time.Second)
	if err != nil {
		code := http.StatusBadRequest
		switch {
		case errors.Is(err, privacy.ErrCommitmentNotFound):
			code = http.StatusNotFound
		case errors.Is(err, privacy.ErrTooEarlyToReveal):
			code = http.StatusTooEarly
		}
		JSONError(w, err, code)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(RevealResponse{
		OrderHash:    delayed.OrderHash.Hex(),
		ExecuteAfter: delayed.ExecuteAfter,
	})
}

// HandleExecute fills a revealed order once its execution delay has elapsed.
func (h *CommitmentsHandler) HandleExecute(w http.ResponseWriter, r *http.Request) {
	orderHash, err := parseHash(mux.Vars(r)["orderHash"], "orderHash")
	if err != nil {
		JSONError(w, err, http.StatusBadRequest)
		return
	}

	swap, err := h.committer.ExecuteDelayedOrder(r.Context(), orderHash)
	if err != nil {
		code := http.StatusInternalServerError
		switch {
		case errors.Is(err, privacy.ErrOrderNotScheduled):
			code = http.StatusNotFound
		case errors.Is(err, privacy.ErrExecutionTooEarly):
			code = http.StatusTooEarly
		}
		JSONError(w, err, code)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(swapResponse(swap))
}
