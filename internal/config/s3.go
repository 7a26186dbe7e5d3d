package config

type S3 struct {
	Endpoint        string `env:"S3_ENDPOINT"`
	Region          string `env:"S3_REGION" envDefault:"us-east-1"`
	Bucket          string `env:"S3_BUCKET"`
	AccessKeyID     string `env:"S3_ACCESS_KEY_ID" json:"-"`
	SecretAccessKey string `env:"S3_SECRET_ACCESS_KEY" json:"-"`
	UsePathStyle    bool   `env:"S3_USE_PATH_STYLE" envDefault:"true"`
}
