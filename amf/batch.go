package amf

import (
	"sync"

	"github.com/amf-labs/amf-franking/group"
)

// maxConcurrentChecks bounds the number of goroutines a batch call spawns
// at once, mirroring the worker-pool cap in the BBS+ lineage's
// VerifyProofBatch (bbs/proof.go) adapted here from signature batches to
// AMF signature batches.
const maxConcurrentChecks = 32

// VerificationTask pairs one signature with the keys and message it should
// be checked against, for use with BatchVerify/BatchJudge.
type VerificationTask struct {
	PkS, PkR, PkJ group.PublicKey
	Message       []byte
	Sig           Signature
}

// BatchVerify runs Verify concurrently over tasks using skR, returning one
// boolean per task in the same order. Each task's pkR is still taken from
// the task itself so a caller can batch-verify signatures addressed to
// multiple distinct recipients sharing one skR only when that is actually
// true of the caller's key material; the function does no implicit
// cross-checking between tasks.
func BatchVerify(skR group.PrivateKey, tasks []VerificationTask) []bool {
	results := make([]bool, len(tasks))
	sem := make(chan struct{}, maxConcurrentChecks)
	var wg sync.WaitGroup

	for i, task := range tasks {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, task VerificationTask) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i] = Verify(skR, task.PkS, task.PkR, task.PkJ, task.Message, task.Sig)
		}(i, task)
	}
	wg.Wait()
	return results
}

// BatchJudge is BatchVerify's counterpart for the judge role.
func BatchJudge(skJ group.PrivateKey, tasks []VerificationTask) []bool {
	results := make([]bool, len(tasks))
	sem := make(chan struct{}, maxConcurrentChecks)
	var wg sync.WaitGroup

	for i, task := range tasks {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, task VerificationTask) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i] = Judge(skJ, task.PkS, task.PkR, task.PkJ, task.Message, task.Sig)
		}(i, task)
	}
	wg.Wait()
	return results
}
