package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/linarr-project/linarr/pkg/buildinfo"
	"github.com/linarr-project/linarr/pkg/cache"
	apperrors "github.com/linarr-project/linarr/pkg/errors"
	"github.com/linarr-project/linarr/pkg/graph"
	"github.com/linarr-project/linarr/pkg/linarr"
	"github.com/linarr-project/linarr/pkg/observability"
)

// maxBodyBytes caps request bodies; graphs the solvers can handle are tiny.
const maxBodyBytes = 1 << 20

// =============================================================================
// Request / Response Types
// =============================================================================

type countRequest struct {
	Graph       graph.Document `json:"graph"`
	Arrangement []int          `json:"arrangement,omitempty"` // identity when omitted
	Bound       *uint64        `json:"bound,omitempty"`
}

type countResponse struct {
	Crossings *uint64 `json:"crossings,omitempty"` // omitted when the bound was exceeded
	Bound     *uint64 `json:"bound,omitempty"`
	Within    *bool   `json:"within,omitempty"`
}

type minimizeRequest struct {
	Graph     graph.Document `json:"graph"`
	Algorithm string         `json:"algorithm,omitempty"` // auto when omitted
	NoCache   bool           `json:"no_cache,omitempty"`
}

type minimizeResponse struct {
	Crossings uint64 `json:"crossings"`
	Order     []int  `json:"order"`
	Algorithm string `json:"algorithm"`
	Cached    bool   `json:"cached"`
}

type decideRequest struct {
	Graph     graph.Document `json:"graph"`
	Bound     uint64         `json:"bound"`
	Algorithm string         `json:"algorithm,omitempty"`
	NoCache   bool           `json:"no_cache,omitempty"`
}

type decideResponse struct {
	Bound     uint64  `json:"bound"`
	Within    bool    `json:"within"`
	Crossings *uint64 `json:"crossings,omitempty"` // witness count when within
	Algorithm string  `json:"algorithm"`
	Cached    bool    `json:"cached"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// =============================================================================
// Handlers
// =============================================================================

type healthResponse struct {
	Status string         `json:"status"`
	Build  buildinfo.Info `json:"build"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Build: buildinfo.Get()})
}

func (s *Server) handleCount(w http.ResponseWriter, r *http.Request) {
	var req countRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	g, err := graph.ToGraph(req.Graph)
	if err != nil {
		s.writeError(w, r, apperrors.Wrap(apperrors.ErrCodeInvalidGraph, err, "invalid graph"))
		return
	}

	arr := linarr.Identity(g.NumVertices())
	if req.Arrangement != nil {
		arr, err = linarr.FromOrder(req.Arrangement)
		if err != nil || arr.Len() != g.NumVertices() {
			s.writeError(w, r, apperrors.New(apperrors.ErrCodeInvalidArrangement, "arrangement is not a permutation of the %d vertices", g.NumVertices()))
			return
		}
	}

	var resp countResponse
	if req.Bound != nil {
		dec := linarr.IsCountLessEq(g, arr, *req.Bound)
		within := dec.LessEq()
		resp.Bound = req.Bound
		resp.Within = &within
		if within {
			v := dec.Value
			resp.Crossings = &v
		}
	} else {
		c := linarr.Count(g, arr)
		resp.Crossings = &c
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleMinimize(w http.ResponseWriter, r *http.Request) {
	var req minimizeRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	g, algorithm, err := s.prepareSolve(req.Graph, req.Algorithm)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	key := s.keyer.ResultKey(s.graphHash(g, w, r), cache.ResultKeyOpts{Algorithm: algorithm})
	if !req.NoCache {
		if data, hit, err := s.store.Get(r.Context(), key); err == nil && hit {
			observability.Cache().OnCacheHit(r.Context(), "result")
			var resp minimizeResponse
			if json.Unmarshal(data, &resp) == nil {
				resp.Cached = true
				writeJSON(w, http.StatusOK, resp)
				return
			}
		} else {
			observability.Cache().OnCacheMiss(r.Context(), "result")
		}
	}

	crossings, arr, err := s.minimize(g, algorithm)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	resp := minimizeResponse{Crossings: crossings, Order: arr.Order(), Algorithm: algorithm}
	if !req.NoCache {
		if data, err := json.Marshal(resp); err == nil {
			if err := s.store.Set(r.Context(), key, data, 0); err == nil {
				observability.Cache().OnCacheSet(r.Context(), "result", len(data))
			}
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDecide(w http.ResponseWriter, r *http.Request) {
	var req decideRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	g, algorithm, err := s.prepareSolve(req.Graph, req.Algorithm)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	key := s.keyer.ResultKey(s.graphHash(g, w, r), cache.ResultKeyOpts{
		Algorithm: algorithm,
		Bounded:   true,
		Bound:     req.Bound,
	})
	if !req.NoCache {
		if data, hit, err := s.store.Get(r.Context(), key); err == nil && hit {
			observability.Cache().OnCacheHit(r.Context(), "result")
			var resp decideResponse
			if json.Unmarshal(data, &resp) == nil {
				resp.Cached = true
				writeJSON(w, http.StatusOK, resp)
				return
			}
		} else {
			observability.Cache().OnCacheMiss(r.Context(), "result")
		}
	}

	dec, err := s.decide(g, req.Bound, algorithm)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	resp := decideResponse{Bound: req.Bound, Within: dec.LessEq(), Algorithm: algorithm}
	if dec.LessEq() {
		v := dec.Value
		resp.Crossings = &v
	}
	if !req.NoCache {
		if data, err := json.Marshal(resp); err == nil {
			if err := s.store.Set(r.Context(), key, data, 0); err == nil {
				observability.Cache().OnCacheSet(r.Context(), "result", len(data))
			}
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// =============================================================================
// Solve Plumbing
// =============================================================================

// prepareSolve validates the document and algorithm and applies the size cap.
func (s *Server) prepareSolve(doc graph.Document, algorithm string) (graph.Graph, string, error) {
	if algorithm == "" {
		algorithm = "auto"
	}
	if err := apperrors.ValidateAlgorithm(algorithm); err != nil {
		return nil, "", err
	}
	g, err := graph.ToGraph(doc)
	if err != nil {
		return nil, "", apperrors.Wrap(apperrors.ErrCodeInvalidGraph, err, "invalid graph")
	}
	if s.cfg.MaxVertices > 0 {
		if err := apperrors.ValidateVertexCount(g.NumVertices(), s.cfg.MaxVertices); err != nil {
			return nil, "", err
		}
	}
	return g, algorithm, nil
}

func (s *Server) minimize(g graph.Graph, algorithm string) (uint64, *linarr.Arrangement, error) {
	switch algorithm {
	case "brute-force":
		bf := &linarr.BruteForce{}
		return bf.Minimize(g)
	case "subset":
		ss := &linarr.SubsetSolver{MemoWidth: s.cfg.MemoWidth}
		return ss.Minimize(g)
	default:
		return linarr.Minimize(g)
	}
}

func (s *Server) decide(g graph.Graph, bound uint64, algorithm string) (linarr.Decision, error) {
	switch algorithm {
	case "brute-force":
		bf := &linarr.BruteForce{}
		return bf.MinimizeWithBound(g, bound)
	case "subset":
		ss := &linarr.SubsetSolver{MemoWidth: s.cfg.MemoWidth}
		return ss.MinimizeWithBound(g, bound)
	default:
		return linarr.MinimizeWithBound(g, bound)
	}
}

// graphHash hashes the graph for cache keys; hashing only fails on a graph
// that cannot be serialized, which ToGraph has already ruled out.
func (s *Server) graphHash(g graph.Graph, _ http.ResponseWriter, r *http.Request) string {
	h, err := cache.HashGraph(g)
	if err != nil {
		s.logger.Debugf("Hash failed (%s): %v", requestIDFromContext(r.Context()), err)
		return ""
	}
	return h
}

// =============================================================================
// Encoding
// =============================================================================

func decodeBody(r *http.Request, v any) error {
	body := http.MaxBytesReader(nil, r.Body, maxBodyBytes)
	defer body.Close()

	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return apperrors.New(apperrors.ErrCodeInvalidInput, "empty request body")
		}
		return apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "decode request")
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps application error codes to HTTP statuses.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := apperrors.GetCode(err)
	status := http.StatusInternalServerError
	switch code {
	case apperrors.ErrCodeInvalidInput, apperrors.ErrCodeInvalidGraph,
		apperrors.ErrCodeInvalidArrangement, apperrors.ErrCodeInvalidAlgorithm,
		apperrors.ErrCodeInvalidFormat:
		status = http.StatusBadRequest
	case apperrors.ErrCodeTooManyVertices:
		status = http.StatusUnprocessableEntity
	case apperrors.ErrCodeNotFound, apperrors.ErrCodeFileNotFound:
		status = http.StatusNotFound
	case apperrors.ErrCodeTimeout:
		status = http.StatusGatewayTimeout
	}

	if errors.Is(err, linarr.ErrTooManyVertices) {
		status = http.StatusUnprocessableEntity
		code = apperrors.ErrCodeTooManyVertices
	}

	observability.HTTP().OnError(r.Context(), r.Method, r.Host, r.URL.Path, err)
	s.logger.Debugf("Request failed (%s): %v", requestIDFromContext(r.Context()), err)
	writeJSON(w, status, errorResponse{Error: errorBody{
		Code:    string(code),
		Message: apperrors.UserMessage(err),
	}})
}
