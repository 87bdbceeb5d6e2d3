package indicator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httputil"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/mindpulse/nowcast-api/schema"
)

// ExtractResult is the indicator payload the extraction service derives
// from one chat message.
type ExtractResult struct {
	Distress        int                     `json:"distress_0_10"`
	Rumination      int                     `json:"rumination_0_10"`
	SleepDifficulty int                     `json:"sleep_difficulty_0_10"`
	Distortion      schema.DistortionCounts `json:"distortion"`
}

type IndicatorClient struct {
	endpoint string
	client   *http.Client
}

func New(endpoint string) *IndicatorClient {
	return &IndicatorClient{
		endpoint: endpoint,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Extract sends one user message to the extraction service and returns
// the psychological indicators it found.
func (i *IndicatorClient) Extract(message string) (*ExtractResult, error) {
	body, err := json.Marshal(map[string]string{"message": message})
	if err != nil {
		return nil, err
	}

	reqString := fmt.Sprintf("%s/extract", i.endpoint)
	log.WithField("prefix", "indicator").WithField("req", reqString).Debug("request indicator extraction")

	resp, err := i.client.Post(reqString, "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		dumpBytes, err := httputil.DumpResponse(resp, true)
		if err != nil {
			log.WithField("prefix", "indicator").WithError(err).Error("fail to dump response")
		}
		log.WithField("prefix", "indicator").WithField("resp", string(dumpBytes)).Error("error response from extraction service")
		return nil, fmt.Errorf("fail to extract indicators")
	}

	var result ExtractResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	return &result, nil
}
