package db

import (
	"errors"
	"strconv"

	"github.com/jsphweid/basscard/constants"
	"github.com/jsphweid/basscard/model"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
)

const tableName = "basscard-metadata"

// GetSongMetadatas batch-fetches song metadata keyed by title from the
// metadata table. DynamoDB caps BatchGetItem at well above 10 keys, but
// callers here never need more than a handful per song.
func GetSongMetadatas(titles []string) (map[string]model.SongMetadata, error) {
	if len(titles) > 10 {
		return nil, errors.New("not supposed to pass in more than 10 titles")
	}

	res := make(map[string]model.SongMetadata)
	if len(titles) == 0 {
		return res, nil
	}

	endpoint := constants.GetSongDBEndpoint()
	if endpoint == "" {
		return res, nil
	}

	var keys []map[string]*dynamodb.AttributeValue
	for _, title := range titles {
		keys = append(keys, map[string]*dynamodb.AttributeValue{
			"PK": {S: aws.String(title)},
		})
	}

	sess, err := session.NewSession(&aws.Config{
		Region:   aws.String("localhost"),
		Endpoint: &endpoint,
	})
	if err != nil {
		return nil, err
	}

	client := dynamodb.New(sess)
	input := &dynamodb.BatchGetItemInput{
		RequestItems: map[string]*dynamodb.KeysAndAttributes{
			tableName: {Keys: keys},
		},
	}
	dbres, err := client.BatchGetItem(input)
	if err != nil {
		return nil, err
	}

	for _, v := range dbres.Responses[tableName] {
		var s model.SongMetadata
		if year, ok := v["Year"]; ok && year.N != nil {
			n, _ := strconv.ParseUint(*year.N, 10, 32)
			s.Year = uint(n)
		}
		if artist, ok := v["Artist"]; ok && artist.S != nil {
			s.Artist = *artist.S
		}
		if release, ok := v["Release"]; ok && release.S != nil {
			s.Release = *release.S
		}
		if title, ok := v["Title"]; ok && title.S != nil {
			s.Title = *title.S
		}
		if pk, ok := v["PK"]; ok && pk.S != nil {
			res[*pk.S] = s
		}
	}

	return res, nil
}
