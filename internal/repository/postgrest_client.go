package repository

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
)

const postgrestPathPrefix = "/rest/v1"

// PostgRESTOptions REST 网关连接配置
type PostgRESTOptions struct {
	BaseURL    string
	Credential string
	Schema     string
	Timeout    time.Duration
}

// PostgRESTClient 托管数据库 REST 网关客户端
type PostgRESTClient struct {
	http *resty.Client
}

// postgrestErrorBody 网关错误响应
type postgrestErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

// postgrestResult 一次查询的原始结果
type postgrestResult struct {
	body  []byte
	total int64
}

// NewPostgRESTClient 创建 REST 网关客户端
func NewPostgRESTClient(options PostgRESTOptions) *PostgRESTClient {
	client := resty.New().
		SetBaseURL(strings.TrimRight(strings.TrimSpace(options.BaseURL), "/")+postgrestPathPrefix).
		SetHeader("Accept", "application/json").
		SetHeader("apikey", options.Credential).
		SetAuthToken(options.Credential).
		SetJSONMarshaler(json.Marshal).
		SetJSONUnmarshaler(json.Unmarshal)
	if options.Timeout > 0 {
		client.SetTimeout(options.Timeout)
	}
	if schema := strings.TrimSpace(options.Schema); schema != "" {
		client.SetHeader("Accept-Profile", schema)
	}
	return &PostgRESTClient{http: client}
}

// selectRows 查询表数据，withCount 时请求精确总数
func (c *PostgRESTClient) selectRows(ctx context.Context, table string, params url.Values, withCount bool) (*postgrestResult, error) {
	req := c.http.R().
		SetContext(ctx).
		SetQueryParamsFromValues(params)
	if withCount {
		req.SetHeader("Prefer", "count=exact")
	}

	resp, err := req.Get("/" + table)
	if err != nil {
		return nil, &StoreError{Op: "select " + table, Message: err.Error(), Err: err}
	}

	total := int64(-1)
	if withCount {
		total = parseContentRangeTotal(resp.Header().Get("Content-Range"))
	}
	// 偏移量超出总数时网关返回 416，视为空页
	if resp.StatusCode() == http.StatusRequestedRangeNotSatisfiable {
		return &postgrestResult{body: []byte("[]"), total: maxInt64(total, 0)}, nil
	}
	if resp.IsError() {
		return nil, newPostgRESTError(table, resp)
	}
	return &postgrestResult{body: resp.Body(), total: total}, nil
}

func newPostgRESTError(table string, resp *resty.Response) *StoreError {
	storeErr := &StoreError{Op: "select " + table, Status: resp.StatusCode()}
	var body postgrestErrorBody
	if err := json.Unmarshal(resp.Body(), &body); err == nil && strings.TrimSpace(body.Message) != "" {
		storeErr.Message = body.Message
		return storeErr
	}
	raw := strings.TrimSpace(string(resp.Body()))
	if raw == "" {
		raw = resp.Status()
	}
	storeErr.Message = raw
	return storeErr
}

// parseContentRangeTotal 解析 Content-Range 中的总数，如 0-9/25、*/0
func parseContentRangeTotal(header string) int64 {
	header = strings.TrimSpace(header)
	idx := strings.LastIndex(header, "/")
	if idx < 0 {
		return -1
	}
	total, err := strconv.ParseInt(strings.TrimSpace(header[idx+1:]), 10, 64)
	if err != nil {
		return -1
	}
	return total
}

// eqFilter 生成等值过滤
func eqFilter(value string) string {
	return "eq." + value
}

// ilikeAnyFilter 生成多列 ilike 的 or 过滤表达式
// PostgREST 把 * 当作 % 且无法转义，搜索词中的 * 以单字符通配 _ 代替
func ilikeAnyFilter(columns []string, term string) string {
	escaped := strings.ReplaceAll(escapeLike(term), "*", "_")
	pattern := quoteFilterValue("*" + escaped + "*")
	parts := make([]string, 0, len(columns))
	for _, column := range columns {
		parts = append(parts, fmt.Sprintf("%s.ilike.%s", column, pattern))
	}
	return "(" + strings.Join(parts, ",") + ")"
}

// quoteFilterValue 用双引号包裹过滤值，避免逗号和括号被当作语法
func quoteFilterValue(value string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(value)
	return `"` + escaped + `"`
}

func maxInt64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
