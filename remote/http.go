package remote

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ajg/form"
	"github.com/pkg/errors"

	"github.com/travisc5/liferay-screens/log"
)

const updateRecordPath = "/api/record/update"

// HTTPRecordService implements RecordService over the backend's
// form-encoded command endpoint.
type HTTPRecordService struct {
	session Session
	client  *http.Client
}

func NewHTTPRecordService(session Session) *HTTPRecordService {
	return &HTTPRecordService{
		session: session,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type updateRecordCmd struct {
	RecordID       int64  `form:"recordId"`
	Flags          int    `form:"flags"`
	Fields         string `form:"fieldsMap"`
	MergeFields    bool   `form:"mergeFields"`
	ServiceContext string `form:"serviceContext"`
}

func (s *HTTPRecordService) UpdateRecord(
	ctx context.Context,
	recordID int64,
	flags int,
	fields map[string]string,
	merge bool,
	svcCtx ServiceContext,
) (map[string]any, error) {

	fieldsJSON, err := json.Marshal(fields)
	if err != nil {
		return nil, errors.Wrap(err, "remote.update_record.encode_fields")
	}
	svcCtxJSON, err := json.Marshal(svcCtx)
	if err != nil {
		return nil, errors.Wrap(err, "remote.update_record.encode_context")
	}

	values, err := form.EncodeToValues(updateRecordCmd{
		RecordID:       recordID,
		Flags:          flags,
		Fields:         string(fieldsJSON),
		MergeFields:    merge,
		ServiceContext: string(svcCtxJSON),
	})
	if err != nil {
		return nil, errors.Wrap(err, "remote.update_record.encode_command")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		s.session.Server+updateRecordPath, strings.NewReader(values.Encode()))
	if err != nil {
		return nil, errors.Wrap(err, "remote.update_record.request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(s.session.Username, s.session.Password)

	log.Debugf("remote.update_record: recordId=%d groupId=%d", recordID, svcCtx.ScopeGroupID)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "remote.update_record.call")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, errors.Errorf("remote.update_record: status %d: %s",
			resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var result map[string]any
	err = json.NewDecoder(resp.Body).Decode(&result)
	if err != nil {
		return nil, errors.Wrap(err, "remote.update_record.parse_response")
	}
	return result, nil
}
