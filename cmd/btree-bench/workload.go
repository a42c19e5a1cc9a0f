package main

import "math/rand"

type WorkloadType string

const (
	InsertHeavy WorkloadType = "insert-heavy (90/10)"
	LookupHeavy WorkloadType = "lookup-heavy (10/90)"
	DeleteChurn WorkloadType = "delete churn"
)

var workloads = []WorkloadType{InsertHeavy, LookupHeavy, DeleteChurn}

// executeWorkload runs a mixed distribution of ops against idx.
func executeWorkload(idx index, wType WorkloadType, ops int) error {
	for i := 0; i < ops; i++ {
		choice := rand.Intn(100)
		key := int64(rand.Intn(ops))

		var err error
		switch wType {
		case InsertHeavy:
			if choice < 90 {
				err = idx.Insert(key)
			} else {
				_, err = idx.Contains(key)
			}
		case LookupHeavy:
			if choice < 10 {
				err = idx.Insert(key)
			} else {
				_, err = idx.Contains(key)
			}
		case DeleteChurn:
			switch {
			case choice < 45:
				err = idx.Insert(key)
			case choice < 90:
				err = idx.Delete(key)
			default:
				_, err = idx.Contains(key)
			}
		}
		if err != nil {
			return err
		}
	}
	return nil
}
