package parsers

import (
	"math"
	"regexp"
	"strconv"

	"nginx-report/internal/models"
)

// Fixed nginx "ui_short" access-log line:
//
//	log_format ui_short '$remote_addr  $remote_user $http_x_real_ip [$time_local] "$request" '
//	                    '$status $body_bytes_sent "$http_referer" '
//	                    '"$http_user_agent" "$http_x_forwarded_for" "$http_X_REQUEST_ID" "$http_X_RB_USER" '
//	                    '$request_time';
var lineRegexp = regexp.MustCompile(`(?i)^(?P<remote_host>[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}) +` +
	`(?P<remote_user>[^ ]+) +` +
	`(?P<http_x_real_ip>[^ ]+) +` +
	`(?P<time_local>\[[^\]]+\]) +` +
	`"[a-z]+ (?P<request>[^"]+) HTTP[^"]+" +` +
	`(?P<status>[^ ]+) +` +
	`(?P<body_bytes_sent>[^ ]+) +` +
	`"(?P<http_referer>[^"]+)" +` +
	`"(?P<http_user_agent>[^"]+)" +` +
	`"(?P<http_x_forwarded_for>[^"]+)" +` +
	`"(?P<http_x_request_id>[^"]+)" +` +
	`"(?P<http_x_rb_user>[^"]+)" +` +
	`(?P<request_time>[0-9]+\.[0-9]+)$`)

var (
	requestIndex     = lineRegexp.SubexpIndex("request")
	userAgentIndex   = lineRegexp.SubexpIndex("http_user_agent")
	requestTimeIndex = lineRegexp.SubexpIndex("request_time")
)

// Parse extracts the request URL, request time, and user agent from one
// access-log line. Malformed lines are expected input: any structural
// mismatch, or a request time that is not a finite non-negative number,
// yields Valid=false and never an error.
func Parse(line string) models.ParsedRequest {
	groups := lineRegexp.FindStringSubmatch(line)
	if groups == nil {
		return models.ParsedRequest{}
	}

	requestTime, err := strconv.ParseFloat(groups[requestTimeIndex], 64)
	if err != nil || math.IsInf(requestTime, 0) || math.IsNaN(requestTime) || requestTime < 0 {
		return models.ParsedRequest{}
	}

	return models.ParsedRequest{
		URL:         groups[requestIndex],
		RequestTime: requestTime,
		UserAgent:   groups[userAgentIndex],
		Valid:       true,
	}
}
