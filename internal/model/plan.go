package model

// Plan is a bucket layout prepared ahead of time, read by the analyze command.
type Plan struct {
	Buckets []PlanBucket `yaml:"buckets"`
}

// PlanBucket is one bucket of a plan.
type PlanBucket struct {
	Name  string   `yaml:"name"`
	Files []string `yaml:"files"`
}
