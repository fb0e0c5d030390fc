package fetcher

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/MichalMitros/ecom-reconciler/internal/platform"
	"github.com/MichalMitros/ecom-reconciler/internal/platform/models"
	"github.com/jlaffaye/ftp"
)

// Conn is a logged in connection to the feed server.
type Conn interface {
	List(path string) ([]*ftp.Entry, error)
	Retr(path string) (io.ReadCloser, error)
	Quit() error
}

// Credentials of a feed account.
type Credentials struct {
	User     string
	Password string
}

// DialFunc opens a logged in connection.
type DialFunc func(ctx context.Context, creds Credentials) (Conn, error)

// Fetcher downloads the latest feed files from the feed server.
// Connections are opened on first use per account and kept until Close.
type Fetcher struct {
	dial     DialFunc
	accounts map[string]Credentials

	mu    sync.Mutex
	conns map[string]Conn
}

// Option is Fetcher option.
type Option func(f *Fetcher)

// WithDialer replaces the FTP dialer.
func WithDialer(dial DialFunc) Option {
	return func(f *Fetcher) {
		f.dial = dial
	}
}

// NewFetcher returns new Fetcher connecting to the FTP server at addr.
func NewFetcher(addr string, timeout time.Duration, accounts map[string]Credentials, ops ...Option) *Fetcher {
	f := &Fetcher{
		dial:     ftpDialer(addr, timeout),
		accounts: accounts,
		conns:    make(map[string]Conn),
	}

	for _, op := range ops {
		op(f)
	}

	return f
}

// FetchLatest returns the newest file in dir whose name matches the pattern.
// Zip and gzip files are decompressed. The caller is responsible for closing Feed.Body.
func (f *Fetcher) FetchLatest(ctx context.Context, account, dir, pattern string) (*models.Feed, error) {
	conn, err := f.conn(ctx, account)
	if err != nil {
		return nil, err
	}

	entries, err := conn.List(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: can't list %s: %w", platform.ErrTransport, dir, err)
	}

	latest, err := latestMatch(entries, pattern)
	if err != nil {
		return nil, err
	}
	if latest == nil {
		return nil, &platform.NotFoundError{Entity: "feed", Identifier: path.Join(dir, pattern)}
	}

	resp, err := conn.Retr(path.Join(dir, latest.Name))
	if err != nil {
		return nil, fmt.Errorf("%w: can't retrieve %s: %w", platform.ErrTransport, latest.Name, err)
	}

	body, err := decompress(latest.Name, resp)
	if err != nil {
		return nil, err
	}

	return &models.Feed{
		Name:       latest.Name,
		Size:       int64(latest.Size),
		ModifiedAt: latest.Time,
		Body:       body,
	}, nil
}

// Close quits all opened connections.
func (f *Fetcher) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	var errs []error
	for account, conn := range f.conns {
		if err := conn.Quit(); err != nil {
			errs = append(errs, fmt.Errorf("can't quit %s connection: %w", account, err))
		}
		delete(f.conns, account)
	}

	return errors.Join(errs...)
}

func (f *Fetcher) conn(ctx context.Context, account string) (Conn, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if conn, ok := f.conns[account]; ok {
		return conn, nil
	}

	creds, ok := f.accounts[account]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAccount, account)
	}

	conn, err := f.dial(ctx, creds)
	if err != nil {
		return nil, fmt.Errorf("%w: can't connect to feed server: %w", platform.ErrTransport, err)
	}
	f.conns[account] = conn

	return conn, nil
}

func latestMatch(entries []*ftp.Entry, pattern string) (*ftp.Entry, error) {
	var latest *ftp.Entry
	for _, entry := range entries {
		if entry.Type != ftp.EntryTypeFile {
			continue
		}

		ok, err := path.Match(pattern, entry.Name)
		if err != nil {
			return nil, fmt.Errorf("bad feed pattern %q: %w", pattern, err)
		}
		if ok && (latest == nil || entry.Time.After(latest.Time)) {
			latest = entry
		}
	}

	return latest, nil
}

func decompress(name string, body io.ReadCloser) (io.ReadCloser, error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".zip":
		return unzip(body)
	case ".gz":
		return gunzip(body)
	default:
		return body, nil
	}
}

// unzip reads the whole archive, zip needs random access.
func unzip(body io.ReadCloser) (io.ReadCloser, error) {
	defer body.Close()

	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("%w: can't download archive: %w", platform.ErrTransport, err)
	}

	archive, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return nil, fmt.Errorf("%w: can't open archive: %w", platform.ErrMalformedPayload, err)
	}
	if len(archive.File) == 0 {
		return nil, ErrEmptyArchive
	}

	file, err := archive.File[0].Open()
	if err != nil {
		return nil, fmt.Errorf("%w: can't open %s: %w", platform.ErrMalformedPayload, archive.File[0].Name, err)
	}

	return file, nil
}

// gunzip returns io.ReadCloser with decompressed feed file.
func gunzip(body io.ReadCloser) (io.ReadCloser, error) {
	decompressed, err := gzip.NewReader(body)
	if err != nil {
		_ = body.Close()
		return nil, fmt.Errorf("%w: can't decompress feed: %w", platform.ErrMalformedPayload, err)
	}

	return &decompressedReadCloser{
		compressed:   body,
		decompressed: decompressed,
	}, nil
}

// decompressedReadCloser wraps decompressed Reader and compressed ReadCloser.
// It reads from decompressed Reader, but closes compressed ReadCloser.
type decompressedReadCloser struct {
	compressed   io.ReadCloser
	decompressed io.Reader
}

func (r decompressedReadCloser) Read(p []byte) (n int, err error) {
	return r.decompressed.Read(p)
}

func (r decompressedReadCloser) Close() error {
	return r.compressed.Close()
}

type serverConn struct {
	*ftp.ServerConn
}

func (c serverConn) Retr(path string) (io.ReadCloser, error) {
	return c.ServerConn.Retr(path)
}

func ftpDialer(addr string, timeout time.Duration) DialFunc {
	return func(ctx context.Context, creds Credentials) (Conn, error) {
		conn, err := ftp.Dial(addr, ftp.DialWithContext(ctx), ftp.DialWithTimeout(timeout))
		if err != nil {
			return nil, err
		}

		if err := conn.Login(creds.User, creds.Password); err != nil {
			_ = conn.Quit()
			return nil, fmt.Errorf("can't login as %s: %w", creds.User, err)
		}

		return serverConn{conn}, nil
	}
}
