// internal/visa/application/creator.go
package application

import (
	"context"
	"fmt"

	commonhttp "visa-platform/internal/common/http"
	"visa-platform/internal/common/logger"
)

// Creator records an application submission and returns its identifiers.
type Creator interface {
	Create(ctx context.Context, req *Request) (*Result, error)
}

// HTTPCreator forwards submissions to a remote records backend. Used when
// applications are not stored locally.
type HTTPCreator struct {
	baseURL string
	client  *commonhttp.Client
	logger  logger.Logger
}

func NewHTTPCreator(baseURL string, client *commonhttp.Client, log logger.Logger) *HTTPCreator {
	return &HTTPCreator{
		baseURL: baseURL,
		client:  client,
		logger:  log.WithFields(map[string]interface{}{"component": "http-creator"}),
	}
}

func (c *HTTPCreator) Create(ctx context.Context, req *Request) (*Result, error) {
	var result Result
	url := fmt.Sprintf("%s/api/applications", c.baseURL)

	if err := c.client.PostJSON(ctx, url, req, &result); err != nil {
		c.logger.WithError(err).Error("application forwarding failed", map[string]interface{}{
			"applicantCount": len(req.Applicants),
		})
		return nil, err
	}

	c.logger.Info("application forwarded", map[string]interface{}{
		"applicationId":   result.ApplicationID,
		"referenceNumber": result.ReferenceNumber,
	})
	return &result, nil
}
