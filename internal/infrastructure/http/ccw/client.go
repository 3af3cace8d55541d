// Package ccw talks to the Cisco Commerce order and estimate APIs.
package ccw

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"ccw_query/internal/domain/order"
	"ccw_query/internal/domain/serial"
	"ccw_query/pkg/logger"
)

const (
	DefaultBaseURL = "https://api.cisco.com/"

	pathHello          = "hello"
	pathOrderStatus    = "commerce/ORDER/v2/sync/checkOrderStatus"
	pathOrderStatusPOE = "commerce/ORDER/POE/v2/sync/checkOrderStatus"
	pathSerialNumbers  = "commerce/ORDER/sync/getSerialNumbers"
	pathEstimate       = "commerce/EST/v2/async/acquireEstimate"

	// base URLs of the sandbox contain this marker and serve orders from POE
	testEnvMarker = "api-test"
)

type Client struct {
	http    *http.Client
	baseURL string
	log     logger.Logger

	now   func() time.Time
	newID func() string
}

// NewClient builds a client on an authenticated session. An empty baseURL
// means DefaultBaseURL.
func NewClient(session *Session, baseURL string, log logger.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Client{
		http:    session.HTTPClient(),
		baseURL: baseURL,
		log:     log,
		now:     time.Now,
		newID:   func() string { return uuid.NewString() },
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// Hello checks that the token is accepted.
func (c *Client) Hello(ctx context.Context) (bool, error) {
	if _, err := c.do(ctx, &request{Method: http.MethodGet, Path: pathHello}); err != nil {
		return false, fmt.Errorf("hello: %w", err)
	}
	return true, nil
}

func (c *Client) orderStatusPath() string {
	if strings.Contains(c.baseURL, testEnvMarker) {
		return pathOrderStatusPOE
	}
	return pathOrderStatus
}

// CheckOrderStatus fetches the detailed status document of a sales order.
func (c *Client) CheckOrderStatus(ctx context.Context, salesOrder string) (*order.Document, error) {
	payload, err := json.Marshal(c.orderStatusQuery(salesOrder))
	if err != nil {
		return nil, fmt.Errorf("encode order status query: %w", err)
	}

	resp, err := c.do(ctx, &request{
		Method:  http.MethodPost,
		Path:    c.orderStatusPath(),
		Headers: jsonHeaders,
		Body:    payload,
	})
	if err != nil {
		return nil, fmt.Errorf("check order status %s: %w", salesOrder, err)
	}

	var doc order.Document
	if err := json.Unmarshal(resp.Body, &doc); err != nil {
		return nil, fmt.Errorf("decode order status %s: %w", salesOrder, err)
	}
	return &doc, nil
}

// SerialPage fetches one page of serial numbers. It satisfies
// serial.PageFetcher.
func (c *Client) SerialPage(ctx context.Context, salesOrder string, page int) (*serial.Page, error) {
	payload, err := json.Marshal(serialRequest{Request: serialRequestBody{
		SalesOrderNumber: salesOrder,
		PageNumber:       page,
	}})
	if err != nil {
		return nil, fmt.Errorf("encode serial query: %w", err)
	}

	resp, err := c.do(ctx, &request{
		Method:  http.MethodPost,
		Path:    pathSerialNumbers,
		Headers: jsonHeaders,
		Body:    payload,
	})
	if err != nil {
		return nil, err
	}

	var out serialResponse
	if err := json.Unmarshal(resp.Body, &out); err != nil {
		return nil, fmt.Errorf("decode serial page: %w", err)
	}
	return &out.Response, nil
}

// AcquireEstimate returns the raw SOAP answer for an estimate; parse it with
// estimate.ParseXML.
func (c *Client) AcquireEstimate(ctx context.Context, estimateID string) ([]byte, error) {
	body, err := c.estimateQuery(estimateID)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(ctx, &request{
		Method:  http.MethodPost,
		Path:    pathEstimate,
		Headers: xmlHeaders,
		Body:    body,
	})
	if err != nil {
		return nil, fmt.Errorf("acquire estimate %s: %w", estimateID, err)
	}
	return resp.Body, nil
}

var (
	jsonHeaders = map[string]string{
		"Content-Type": "application/json",
		"Accept":       "application/json",
	}
	xmlHeaders = map[string]string{
		"Content-Type": "application/xml",
		"Accept":       "application/xml",
	}
)

type serialRequest struct {
	Request serialRequestBody `json:"serialNumberRequest"`
}

type serialRequestBody struct {
	SalesOrderNumber string `json:"salesOrderNumber"`
	PageNumber       int    `json:"pageNumber"`
}

type serialResponse struct {
	Response serial.Page `json:"serialNumberResponse"`
}

type valueField struct {
	Value string `json:"value"`
}

type idField struct {
	ID valueField `json:"ID"`
}

// orderStatusQuery is the GetPurchaseOrder request asking for line details.
func (c *Client) orderStatusQuery(salesOrder string) map[string]any {
	return map[string]any{
		"GetPurchaseOrder": map[string]any{
			"value": map[string]any{
				"DataArea": map[string]any{
					"PurchaseOrder": []any{
						map[string]any{
							"PurchaseOrderHeader": map[string]any{
								"ID":                  valueField{},
								"DocumentReference":   []idField{{}},
								"SalesOrderReference": []idField{{ID: valueField{Value: salesOrder}}},
								"Description": []map[string]string{
									{"value": "Yes", "typeCode": "details"},
								},
							},
						},
					},
				},
				"ApplicationArea": map[string]any{
					"CreationDateTime": c.now().UTC().Format(time.RFC3339),
					"BODID": map[string]string{
						"value":           "urn:uuid:" + c.newID(),
						"schemeVersionID": "V1",
					},
				},
			},
		},
	}
}

func (c *Client) estimateQuery(estimateID string) ([]byte, error) {
	var id bytes.Buffer
	if err := xml.EscapeText(&id, []byte(estimateID)); err != nil {
		return nil, fmt.Errorf("escape estimate id: %w", err)
	}
	now := c.now().UTC()
	messageID := "urn:uuid:" + c.newID()
	return []byte(fmt.Sprintf(estimateEnvelope,
		now.Format("2006-01-02T15:04:05Z"),
		messageID,
		now.Format("2006-01-02"),
		messageID,
		id.String(),
	)), nil
}

const estimateEnvelope = `<?xml version="1.0" encoding="UTF-8"?>
<s:Envelope xmlns:s="http://schemas.xmlsoap.org/soap/envelope/">
    <s:Header>
        <h:Messaging xmlns:h="http://docs.oasis-open.org/ebxml-msg/ebms/v3.0/ns/core/200704/"
            xmlns:xsd="http://www.w3.org/2001/XMLSchema"
            xmlns="http://docs.oasis-open.org/ebxml-msg/ebms/v3.0/ns/core/200704/"
            xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">
            <UserMessage>
                <MessageInfo>
                    <Timestamp>%s</Timestamp>
                    <MessageId>%s</MessageId>
                </MessageInfo>
                <PartyInfo>
                    <From>
                        <PartyId>XYZ</PartyId>
                        <Role>http://example.org/roles/Buyer</Role>
                    </From>
                    <To>
                        <PartyId>ESTlistEstimateService.cisco.com</PartyId>
                        <Role>http://example.org/roles/Seller</Role>
                    </To>
                </PartyInfo>
                <CollaborationInfo/>
                <MessageProperties/>
                <PayloadInfo>
                    <PartInfo href="id:part@example.com">
                        <Schema location="http://www.cisco.com/assets/wsx_xsd/QWS/root.xsd" version="2.0"/>
                        <PartProperties>
                            <Property name="MimeType">application/xml</Property>
                        </PartProperties>
                    </PartInfo>
                </PayloadInfo>
            </UserMessage>
        </h:Messaging>
    </s:Header>
    <s:Body>
        <ProcessQuote releaseID="2014" versionID="1.0" systemEnvironmentCode="Production" languageCode="en-US"
            xmlns="http://www.openapplications.org/oagis/10">
            <ApplicationArea>
                <Sender>
                    <ComponentID schemeAgencyID="Cisco">B2B-3.0</ComponentID>
                </Sender>
                <CreationDateTime>%s</CreationDateTime>
                <BODID schemeAgencyID="Cisco">%s</BODID>
                <Extension>
                    <Code typeCode="Estimate">Estimate</Code>
                </Extension>
            </ApplicationArea>
            <DataArea>
                <Quote>
                    <QuoteHeader>
                        <ID typeCode="Estimate ID">%s</ID>
                        <Extension>
                        </Extension>
                    </QuoteHeader>
                </Quote>
            </DataArea>
        </ProcessQuote>
    </s:Body>
</s:Envelope>`
