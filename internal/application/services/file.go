package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
	"path"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"filedrop-api/internal/application/ports"
	domain "filedrop-api/internal/domain/file"
	filedb "filedrop-api/internal/infrastructure/db/postgres/file"
	"filedrop-api/internal/infrastructure/mq"
	dto "filedrop-api/internal/interface/api/rest/dto/file"
)

// 10MB
const MaxFileSize = int64(10 << 20)

// Identifier collisions are once-in-a-lifetime events; more than a couple of
// conflict retries in a row means something else is wrong.
const uploadAttempts = 5

const defaultContentType = "application/octet-stream"

const maxBaseNameLen = 100

var (
	ErrEmptyFile    = errors.New("empty file")
	ErrFileTooLarge = errors.New("file too large")
	ErrUploadFailed = errors.New("upload failed")
)

type FileService struct {
	fileRepository domain.Repository
	issuer         *Issuer
	mq             ports.RabbitMQ
	mCounter       *prometheus.CounterVec
}

func NewFileService(
	fileRepository domain.Repository,
	issuer *Issuer,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.FileService {
	return &FileService{
		fileRepository: fileRepository,
		issuer:         issuer,
		mq:             mq,
		mCounter:       mCounter,
	}
}

// Upload validates the payload, mints a unique (code, delete token) pair and
// persists the record. The pair is returned exactly once: no later read path
// ever exposes the delete token again.
func (fs *FileService) Upload(ctx context.Context, fileName, contentType string, data []byte) (*domain.SharedFile, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFile
	}
	if int64(len(data)) > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	if strings.TrimSpace(contentType) == "" {
		contentType = defaultContentType
	}

	req := &domain.SharedFile{
		OriginalName: sanitizeFileName(fileName),
		ContentType:  contentType,
		SizeBytes:    uint64(len(data)),
		Data:         data,
	}

	for attempt := 0; attempt < uploadAttempts; attempt++ {
		code, token, err := fs.issuer.IssuePair(ctx)
		if err != nil {
			return nil, err
		}
		req.Code = code
		req.DeleteToken = token

		out, err := fs.fileRepository.CreateSharedFile(ctx, req)
		if errors.Is(err, filedb.ErrIdentifierTaken) {
			// a concurrent upload won the race for this code or token;
			// regenerate both and try again
			continue
		}
		if err != nil {
			return nil, err
		}

		fs.publishEvent(http.MethodPost, out)
		fs.mCounter.WithLabelValues("files_uploaded_total").Inc()

		return out, nil
	}

	return nil, ErrUploadFailed
}

func (fs *FileService) FindByCode(ctx context.Context, code string) (*domain.SharedFile, error) {
	f, err := fs.fileRepository.FetchByCode(ctx, NormalizeCode(code))
	if err != nil {
		return nil, err
	}

	return f, nil
}

// Download fetches the record and bumps the download counter. The increment
// is a single atomic UPDATE in the store, concurrent downloads never lose
// updates.
func (fs *FileService) Download(ctx context.Context, code string) (*domain.SharedFile, error) {
	f, err := fs.fileRepository.FetchByCode(ctx, NormalizeCode(code))
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, nil
	}

	if err = fs.fileRepository.IncrementDownloadCount(ctx, f.ID); err != nil {
		return nil, err
	}
	f.DownloadCount++

	fs.mCounter.WithLabelValues("files_downloaded_total").Inc()

	return f, nil
}

// DeleteByCodeAndToken authorizes by possession: both identifiers must match
// the same live row. A wrong token and an unknown code are indistinguishable
// to the caller.
func (fs *FileService) DeleteByCodeAndToken(ctx context.Context, code, token string) (bool, error) {
	token = strings.TrimSpace(token)

	f, err := fs.fileRepository.FetchByCodeAndToken(ctx, NormalizeCode(code), token)
	if err != nil {
		return false, err
	}
	if f == nil {
		return false, nil
	}

	// re-check the token against the fetched row in constant time; the SQL
	// equality match is not a timing-safe comparison
	if subtle.ConstantTimeCompare([]byte(f.DeleteToken), []byte(token)) != 1 {
		return false, nil
	}

	deleted, err := fs.fileRepository.DeleteSharedFile(ctx, f.ID)
	if err != nil {
		return false, err
	}
	if !deleted {
		// lost a delete race; same outcome as an unknown code
		return false, nil
	}

	fs.publishEvent(http.MethodDelete, f)
	fs.mCounter.WithLabelValues("files_deleted_total").Inc()

	return true, nil
}

func (fs *FileService) FindAll(ctx context.Context) (domain.SharedFiles, error) {
	files, err := fs.fileRepository.FetchAll(ctx)
	if err != nil {
		return nil, err
	}

	return files, nil
}

func (fs *FileService) DeleteByID(ctx context.Context, id domain.ID) (bool, error) {
	f, err := fs.fileRepository.FetchByID(ctx, id)
	if err != nil {
		return false, err
	}
	if f == nil {
		return false, nil
	}

	deleted, err := fs.fileRepository.DeleteSharedFile(ctx, id)
	if err != nil {
		return false, err
	}
	if !deleted {
		return false, nil
	}

	fs.publishEvent(http.MethodDelete, f)
	fs.mCounter.WithLabelValues("files_deleted_total").Inc()

	return true, nil
}

func (fs *FileService) publishEvent(method string, f *domain.SharedFile) {
	fs.mq.GetInputChan() <- mq.Event{
		Id:      uuid.New(),
		TS:      time.Now(),
		Method:  method,
		Code:    f.Code,
		Payload: dto.ToResponseSharedFile(*f),
	}
}

// NormalizeCode folds user input onto the issued form: trimmed, uppercase.
// Issuance and every lookup path must agree on this or lookups false-negative.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// sanitizeFileName strips path components and normalizes the display name.
// The stored name is display-only and never addresses storage.
func sanitizeFileName(original string) string {
	if original == "" {
		return "file"
	}

	s := strings.TrimSpace(original)
	s = strings.ReplaceAll(s, "\\", "/")
	s = path.Base(s)

	if s == "." || s == ".." || s == "" {
		return "file"
	}

	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	s, _, _ = transform.String(t, s)

	s = strings.Map(func(r rune) rune {
		if r == '\x00' || r < 0x20 {
			return -1
		}
		return r
	}, s)

	ext := strings.ToLower(path.Ext(s))
	base := strings.TrimSuffix(s, ext)
	base = strings.Trim(base, ". ")

	if base == "" {
		base = "file"
	}

	for utf8.RuneCountInString(base)+len(ext) > maxBaseNameLen {
		_, size := utf8.DecodeLastRuneInString(base)
		if size <= 0 || size > len(base) {
			break
		}
		base = base[:len(base)-size]
	}

	return base + ext
}

func isMn(r rune) bool { return unicode.Is(unicode.Mn, r) }
