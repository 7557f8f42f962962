package downloads

import (
	"context"
	"regexp"
	"strings"

	"github.com/robinjoseph08/golib/logger"
	"github.com/shishobooks/archivist/pkg/config"
	"github.com/shishobooks/archivist/pkg/errcodes"
	"github.com/shishobooks/archivist/pkg/fetch"
	"github.com/shishobooks/archivist/pkg/models"
)

var bookIDRE = regexp.MustCompile(`^[0-9a-f]{32}$`)

type Service struct {
	client      *fetch.Client
	baseURL     string
	libgenURL   string
	ipfsGateway string
}

func NewService(cfg *config.Config, client *fetch.Client) *Service {
	return &Service{
		client:      client,
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		libgenURL:   strings.TrimRight(cfg.LibgenBaseURL, "/"),
		ipfsGateway: strings.TrimRight(cfg.IPFSGateway, "/"),
	}
}

// URLs collects the download locations of the book with the given MD5. A
// missing IPFS identifier is not an error; a libgen failure is.
func (svc *Service) URLs(ctx context.Context, id string) (*models.DownloadURLs, error) {
	log := logger.FromContext(ctx)

	id = strings.ToLower(strings.TrimSpace(id))
	if id == "" {
		return nil, errcodes.ValidationError(`"id" is required`)
	}
	if !bookIDRE.MatchString(id) {
		return nil, errcodes.ValidationError(`"id" should be a 32 character MD5 hex digest`)
	}

	urls := &models.DownloadURLs{LibgenMirrors: []string{}}

	metadata := map[string]interface{}{}
	err := svc.client.FetchJSON(ctx, svc.baseURL+"/dyn/small_file/md5/"+id, &metadata)
	if err != nil {
		log.Err(err).Debug("file metadata unavailable", logger.Data{"id": id})
	} else if cid := ExtractIPFSCID(metadata); cid != "" {
		urls.IPFS = svc.ipfsGateway + "/" + cid
	}

	doc, err := svc.client.FetchHTML(ctx, svc.libgenURL+"/library.php?md5="+id)
	if err != nil {
		return nil, err
	}
	urls.LibgenMirrors = parseMirrors(doc, svc.libgenURL)

	log.Info("resolved download urls", logger.Data{
		"id":      id,
		"ipfs":    urls.IPFS != "",
		"mirrors": len(urls.LibgenMirrors),
	})

	return urls, nil
}
