package cloud

import (
	"context"
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/aws-sdk-go-v2/service/sns"

	"github.com/ANIKETSHETTY47/hydrogen-ops-dashboard/internal/domain"
)

type fakeDynamo struct {
	items []map[string]types.AttributeValue
	query *dynamodb.QueryInput
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.items = append([]map[string]types.AttributeValue{in.Item}, f.items...)
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.query = in
	return &dynamodb.QueryOutput{Items: f.items}, nil
}

func TestDynamoDBArchive(t *testing.T) {
	fake := &fakeDynamo{}
	c := &DynamoDBClient{svc: fake, table: "InsightReports"}
	rep := &domain.InsightReport{
		ID:              "r-1",
		View:            domain.RealTimeMonitoring,
		GeneratedAt:     time.Date(2026, 2, 21, 12, 0, 0, 0, time.UTC),
		SampleCount:     60,
		Insights:        []domain.Insight{{Name: "Most Common Fleet Status", Value: "Idle"}},
		Recommendations: []string{"a", "b"},
	}
	ctx := context.Background()
	if err := c.SaveReport(ctx, rep); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, ok := fake.items[0]["generatedAt"].(*types.AttributeValueMemberN); !ok {
		t.Fatalf("generatedAt not stored as number: %T", fake.items[0]["generatedAt"])
	}

	got, err := c.RecentReports(ctx, 5)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 1 || !reflect.DeepEqual(got[0], *rep) {
		t.Fatalf("got %+v want %+v", got, *rep)
	}
	if aws.ToInt32(fake.query.Limit) != 5 || aws.ToBool(fake.query.ScanIndexForward) {
		t.Fatalf("unexpected query %+v", fake.query)
	}
}

type fakeS3 struct {
	put  *s3.PutObjectInput
	body string
	keys []string
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.put = in
	b, _ := io.ReadAll(in.Body)
	f.body = string(b)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) ListObjectsV2(_ context.Context, in *s3.ListObjectsV2Input, _ ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	var out s3.ListObjectsV2Output
	for _, k := range f.keys {
		if strings.HasPrefix(k, aws.ToString(in.Prefix)) {
			out.Contents = append(out.Contents, s3types.Object{Key: aws.String(k)})
		}
	}
	return &out, nil
}

type fakePresign struct {
	err error
}

func (f fakePresign) PresignGetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &v4.PresignedHTTPRequest{URL: "https://bucket.test/" + aws.ToString(in.Key) + "?sig=1"}, nil
}

func TestS3Upload(t *testing.T) {
	fake := &fakeS3{keys: []string{"dashboards/SupplyChain/a.json", "dashboards/FinancialPerformance/b.json"}}
	c := &S3Client{svc: fake, presign: fakePresign{}, bucket: "exports"}
	ctx := context.Background()

	url, err := c.UploadReport(ctx, "dashboards/SupplyChain/a.json", []byte(`{"view":"SupplyChain"}`), "application/json")
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if url != "https://bucket.test/dashboards/SupplyChain/a.json?sig=1" {
		t.Fatalf("unexpected url %q", url)
	}
	if aws.ToString(fake.put.Bucket) != "exports" || fake.body != `{"view":"SupplyChain"}` {
		t.Fatalf("unexpected put %+v body %q", fake.put, fake.body)
	}

	keys, err := c.ListReports(ctx, "dashboards/SupplyChain/")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(keys) != 1 || keys[0] != "dashboards/SupplyChain/a.json" {
		t.Fatalf("unexpected keys %v", keys)
	}

	c.presign = fakePresign{err: errors.New("no creds")}
	if _, err := c.UploadReport(ctx, "k", nil, "application/json"); err == nil || !strings.Contains(err.Error(), "presigned") {
		t.Fatalf("expected presign error, got %v", err)
	}
}

type fakeSNS struct {
	in *sns.PublishInput
}

func (f *fakeSNS) Publish(_ context.Context, in *sns.PublishInput, _ ...func(*sns.Options)) (*sns.PublishOutput, error) {
	f.in = in
	return &sns.PublishOutput{MessageId: aws.String("m-1")}, nil
}

func TestSNSBatch(t *testing.T) {
	fake := &fakeSNS{}
	c := &SNSClient{svc: fake, topicArn: "arn:aws:sns:us-east-1:123:fuel"}

	if err := c.SendBatchAlerts(context.Background(), "digest", nil); err != nil || fake.in != nil {
		t.Fatalf("empty batch should not publish (%v)", err)
	}
	if err := c.SendBatchAlerts(context.Background(), "digest", []string{"first", "second"}); err != nil {
		t.Fatalf("send: %v", err)
	}
	if got := aws.ToString(fake.in.Message); got != "1. first\n2. second\n" {
		t.Fatalf("unexpected message %q", got)
	}
	if aws.ToString(fake.in.Subject) != "digest" || aws.ToString(fake.in.TopicArn) != c.topicArn {
		t.Fatalf("unexpected publish %+v", fake.in)
	}
}
