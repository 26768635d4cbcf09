package server

import (
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/lidkit/pkg/buildinfo"
	"github.com/matzehuels/lidkit/pkg/catalog"
	"github.com/matzehuels/lidkit/pkg/errors"
	webio "github.com/matzehuels/lidkit/pkg/io"
	"github.com/matzehuels/lidkit/pkg/pipeline"
)

// webResponse is returned by the parse and average endpoints.
type webResponse struct {
	Summary  pipeline.Summary `json:"summary"`
	CacheHit bool             `json:"cache_hit"`
	Catalog  *catalog.Entry   `json:"catalog,omitempty"`
	Web      *webio.Document  `json:"web"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"build":   buildinfo.Get(),
		"catalog": s.catalog != nil,
	})
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	srcs, err := s.sources(w, r)
	if err != nil {
		writeError(w, err)
		return
	}
	l, err := s.runner.Load(r.Context(), srcs[0])
	if err != nil {
		writeError(w, err)
		return
	}

	resp := s.webResponse(l)
	if boolParam(r, "catalog") {
		if s.catalog == nil {
			writeError(w, errors.New(errors.ErrCodeNotFound, "catalog is not enabled"))
			return
		}
		e, err := s.catalog.Add(r.Context(), catalog.Record{
			Name:   r.URL.Query().Get("name"),
			Source: l.Source,
			Format: l.Format,
			Hash:   l.Hash,
		}, l.Web)
		if err != nil {
			writeError(w, err)
			return
		}
		resp.Catalog = &e
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRenderUpload(w http.ResponseWriter, r *http.Request) {
	opts, err := s.renderOptions(r)
	if err != nil {
		writeError(w, err)
		return
	}
	srcs, err := s.sources(w, r)
	if err != nil {
		writeError(w, err)
		return
	}
	l, err := s.runner.Load(r.Context(), srcs[0])
	if err != nil {
		writeError(w, err)
		return
	}
	s.render(w, r, l, opts)
}

func (s *Server) handleAverage(w http.ResponseWriter, r *http.Request) {
	srcs, err := s.sources(w, r)
	if err != nil {
		writeError(w, err)
		return
	}

	members := make([]*pipeline.Loaded, 0, len(srcs))
	for _, src := range srcs {
		l, err := s.runner.Load(r.Context(), src)
		if err != nil {
			writeError(w, err)
			return
		}
		members = append(members, l)
	}

	avg, err := s.runner.Average(r.Context(), members...)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.webResponse(avg))
}

func (s *Server) handleCatalogList(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, errors.New(errors.ErrCodeInvalidInput, "limit must be a non-negative integer"))
			return
		}
		limit = n
	}
	entries, err := s.catalog.List(r.Context(), limit)
	if err != nil {
		writeError(w, err)
		return
	}
	if entries == nil {
		entries = []catalog.Entry{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"entries": entries})
}

func (s *Server) handleCatalogGet(w http.ResponseWriter, r *http.Request) {
	e, err := s.catalog.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (s *Server) handleCatalogWeb(w http.ResponseWriter, r *http.Request) {
	l, err := s.catalogLoaded(r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.webResponse(l))
}

func (s *Server) handleCatalogRender(w http.ResponseWriter, r *http.Request) {
	opts, err := s.renderOptions(r)
	if err != nil {
		writeError(w, err)
		return
	}
	l, err := s.catalogLoaded(r)
	if err != nil {
		writeError(w, err)
		return
	}
	s.render(w, r, l, opts)
}

func (s *Server) handleCatalogRemove(w http.ResponseWriter, r *http.Request) {
	e, err := s.catalog.Remove(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, l *pipeline.Loaded, opts pipeline.RenderOptions) {
	data, err := s.runner.Render(r.Context(), l, opts)
	if err != nil {
		writeError(w, err)
		return
	}
	writeArtifact(w, opts.Format, data)
}

func (s *Server) webResponse(l *pipeline.Loaded) webResponse {
	return webResponse{
		Summary:  pipeline.Summarize(l),
		CacheHit: l.CacheHit,
		Web:      webio.NewDocument(l.Web, webio.Meta{Source: l.Source, Format: l.Format}),
	}
}

// catalogLoaded wraps a catalogued web so it renders and caches like an
// upload. The entry's content hash keeps chart keys stable.
func (s *Server) catalogLoaded(r *http.Request) (*pipeline.Loaded, error) {
	id := chi.URLParam(r, "id")
	e, err := s.catalog.Get(r.Context(), id)
	if err != nil {
		return nil, err
	}
	web, err := s.catalog.Web(r.Context(), e.ID)
	if err != nil {
		return nil, err
	}
	return &pipeline.Loaded{
		Web:    web,
		Source: e.Name,
		Format: e.Format,
		Hash:   e.Hash,
		Key:    s.runner.Keyer.WebKey(e.Hash, e.Format),
	}, nil
}

// sources reads the uploaded files: either one raw body named by the
// "name" query parameter, or the "file" parts of a multipart form.
func (s *Server) sources(w http.ResponseWriter, r *http.Request) ([]pipeline.Source, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.opts.MaxUploadBytes)
	q := r.URL.Query()
	format := q.Get("format")

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(s.opts.MaxUploadBytes); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read multipart form")
		}
		files := r.MultipartForm.File["file"]
		if len(files) == 0 {
			return nil, errors.New(errors.ErrCodeInvalidInput, "multipart form has no file parts")
		}
		srcs := make([]pipeline.Source, 0, len(files))
		for _, fh := range files {
			src, err := readPart(fh, format)
			if err != nil {
				return nil, err
			}
			srcs = append(srcs, src)
		}
		return srcs, nil
	}

	name := q.Get("name")
	if name != "" {
		if err := errors.ValidateFilename(name); err != nil {
			return nil, err
		}
	}
	if name == "" && format == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "raw uploads need a format or name query parameter")
	}
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read request body")
	}
	if len(data) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "empty request body")
	}
	return []pipeline.Source{{Name: name, Data: data, Format: format}}, nil
}

func readPart(fh *multipart.FileHeader, format string) (pipeline.Source, error) {
	if err := errors.ValidateFilename(fh.Filename); err != nil {
		return pipeline.Source{}, err
	}
	f, err := fh.Open()
	if err != nil {
		return pipeline.Source{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "open part %s", fh.Filename)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return pipeline.Source{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "read part %s", fh.Filename)
	}
	return pipeline.Source{Name: fh.Filename, Data: data, Format: format}, nil
}

// renderOptions overlays the query parameters on the server defaults. The
// chart format is "output" so that "format" keeps naming the upload.
func (s *Server) renderOptions(r *http.Request) (pipeline.RenderOptions, error) {
	q := r.URL.Query()
	opts := s.opts.Defaults
	if v := q.Get("kind"); v != "" {
		opts.Kind = v
	}
	if v := q.Get("output"); v != "" {
		opts.Format = v
	}
	if v := q.Get("title"); v != "" {
		opts.Title = v
	}
	if v := q.Get("planes"); v != "" {
		planes, err := ParseFloats(v)
		if err != nil {
			return opts, err
		}
		opts.Planes = planes
	}
	for key, dst := range map[string]*int{"width": &opts.Width, "height": &opts.Height} {
		if v := q.Get(key); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return opts, errors.New(errors.ErrCodeInvalidInput, "%s must be an integer", key)
			}
			*dst = n
		}
	}
	opts.Detailed = boolParam(r, "detailed")
	opts.Refresh = boolParam(r, "refresh")
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return opts, err
	}
	return opts, nil
}

// ParseFloats parses a comma separated list of numbers.
func ParseFloats(s string) ([]float64, error) {
	var out []float64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidInput, "invalid number %q", part)
		}
		out = append(out, v)
	}
	return out, nil
}

func boolParam(r *http.Request, key string) bool {
	v, _ := strconv.ParseBool(r.URL.Query().Get(key))
	return v
}
