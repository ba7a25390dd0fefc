package util

import (
	"sync"

	"github.com/bwmarrin/snowflake"
	"github.com/jxskiss/base62"
	"github.com/pkg/errors"
)

type UniqueIDGenerate struct {
	snowflakeNode *snowflake.Node
}

var (
	singletonUniqueIDGenerate *UniqueIDGenerate
	uniqueIDGenerateOnce      sync.Once
)

func GetUniqueIDGenerate() (*UniqueIDGenerate, error) {
	var onceErr error
	uniqueIDGenerateOnce.Do(func() {
		snowflakeNode, err := snowflake.NewNode(1)
		if err != nil {
			onceErr = errors.Wrap(err, "create snowflake failed")
			return
		}
		singletonUniqueIDGenerate = &UniqueIDGenerate{
			snowflakeNode: snowflakeNode,
		}
	})
	if onceErr != nil {
		return nil, onceErr
	}
	if singletonUniqueIDGenerate == nil {
		return nil, errors.New("create snowflake failed")
	}
	return singletonUniqueIDGenerate, nil
}

func (u UniqueIDGenerate) Generate() *UniqueID {
	return &UniqueID{
		snowflakeID: u.snowflakeNode.Generate(),
	}
}

type UniqueID struct {
	snowflakeID snowflake.ID
}

func (u UniqueID) GetInt64() int64 {
	return u.snowflakeID.Int64()
}

func (u UniqueID) GetBase62() string {
	return string(base62.FormatInt(u.snowflakeID.Int64()))
}

func GetSnowflakeIDInt64() int64 {
	uniqueIDGenerate, err := GetUniqueIDGenerate()
	if err != nil {
		panic(err)
	}
	return uniqueIDGenerate.Generate().GetInt64()
}
