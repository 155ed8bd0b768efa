package config

type ReceiptsConfig struct {
	Backend     string `yaml:"backend"`
	Dir         string `yaml:"dir"`
	BucketName  string `yaml:"bucket"`
	AWSRegion   string `yaml:"region"`
	EndpointURL string `yaml:"endpoint"`
	AccessKey   string `yaml:"access-key"`
	SecretKey   string `yaml:"secret-key"`
}

func (r *ReceiptsConfig) Kind() string {
	return r.Backend
}

func (r *ReceiptsConfig) LocalDir() string {
	return r.Dir
}

func (r *ReceiptsConfig) Bucket() string {
	return r.BucketName
}

func (r *ReceiptsConfig) Region() string {
	return r.AWSRegion
}

func (r *ReceiptsConfig) Endpoint() string {
	return r.EndpointURL
}

func (r *ReceiptsConfig) AccessKeyID() string {
	return r.AccessKey
}

func (r *ReceiptsConfig) SecretAccessKey() string {
	return r.SecretKey
}
