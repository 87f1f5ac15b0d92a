package config

import (
	"fmt"

	"github.com/olivere/elastic/v7"
)

func SetupElasticSearch(elasticUrl string) (*elastic.Client, error) {
	client, err := elastic.NewClient(elastic.SetURL(elasticUrl), elastic.SetSniff(false))
	if err != nil {
		return nil, fmt.Errorf("config: elasticsearch %s: %w", elasticUrl, err)
	}
	return client, nil
}
