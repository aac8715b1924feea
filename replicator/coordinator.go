package replicator

import (
	"fmt"
	"io"
	"log"
	"sync"

	"kms-key-replicator/collection"
	"kms-key-replicator/driverset"
	"kms-key-replicator/resources"
)

type Config struct {
	MaxConcurrentReplications int
}

// Coordinator fans one key replication out across target regions with a
// bounded worker pool.
type Coordinator struct {
	workers int
	logger  *log.Logger
}

func NewCoordinator(logDest io.Writer, c Config) *Coordinator {
	workers := c.MaxConcurrentReplications
	if workers < 1 {
		workers = 1
	}

	return &Coordinator{
		workers: workers,
		logger:  log.New(logDest, "Coordinator ", log.LstdFlags),
	}
}

// Replicate submits one task per target region, in list order, to at most
// the configured number of concurrently active workers. Outcomes are
// consumed in submission order: the first submitted failure determines the
// returned error, but every dispatched task always runs to completion before
// Replicate returns. Tasks are never cancelled mid-flight.
func (c *Coordinator) Replicate(factory driverset.Factory, kmsKeyId string, policy resources.KeyPolicy, targetRegions []string) error {
	if len(targetRegions) == 0 {
		c.logger.Printf("No target regions for kms key %s\n", kmsKeyId)
		return nil
	}

	tasks := make([]resources.ReplicationTask, 0, len(targetRegions))
	for _, region := range targetRegions {
		tasks = append(tasks, resources.ReplicationTask{
			KmsKeyId:     kmsKeyId,
			TargetRegion: region,
			Policy:       policy,
		})
	}

	outcomes := make([]resources.ReplicationOutcome, len(tasks))
	done := make([]chan struct{}, len(tasks))
	for i := range done {
		done[i] = make(chan struct{})
	}

	taskQueue := make(chan int, len(tasks))
	for i := range tasks {
		taskQueue <- i
	}
	close(taskQueue)

	workers := c.workers
	if workers > len(tasks) {
		workers = len(tasks)
	}

	workerGroup := sync.WaitGroup{}
	workerGroup.Add(workers)

	regionErrs := &collection.RegionErrors{}

	for w := 0; w < workers; w++ {
		go func() {
			defer workerGroup.Done()

			// Each worker owns one driver, built on its first task.
			var drv resources.ReplicateKeyDriver

			for i := range taskQueue {
				if drv == nil {
					drv = factory().ReplicateKeyDriver()
				}

				task := tasks[i]
				replicateErr := drv.Replicate(resources.ReplicateKeyDriverConfig{
					KmsKeyId:     task.KmsKeyId,
					TargetRegion: task.TargetRegion,
					Policy:       task.Policy,
				})
				if replicateErr != nil {
					regionErrs.Add(task.TargetRegion, replicateErr)
				}

				outcomes[i] = resources.ReplicationOutcome{
					TargetRegion: task.TargetRegion,
					Err:          replicateErr,
				}
				close(done[i])
			}
		}()
	}

	var firstErr error
	for i := range done {
		<-done[i]
		if outcomes[i].Err != nil {
			firstErr = fmt.Errorf("replicating to %s: %s", outcomes[i].TargetRegion, outcomes[i].Err)
			break
		}
	}

	c.logger.Println("Waiting for in-flight replications to finish...")
	workerGroup.Wait()

	if combinedErr := regionErrs.Error(); combinedErr != nil {
		c.logger.Printf("Replication of kms key %s: %s\n", kmsKeyId, combinedErr)
	}

	return firstErr
}
