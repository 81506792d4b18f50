package answer

import (
	"context"
	"fmt"

	"github.com/alexflint/go-arg"
	"github.com/nathants/answer/lib"
)

func init() {
	lib.Commands["answer-path"] = answerPath
	lib.Args["answer-path"] = answerPathArgs{}
}

type answerPathArgs struct {
	Artifact string `arg:"-a,--artifact,env:ANSWER_PATH"`
}

func (answerPathArgs) Description() string {
	return "\nprint the resolved artifact location\n"
}

func answerPath() {
	var args answerPathArgs
	arg.MustParse(&args)
	artifact, err := lib.NewArtifact(context.Background(), &lib.Config{Artifact: args.Artifact})
	if err != nil {
		lib.Logger.Fatal("error: ", err)
	}
	fmt.Println(artifact)
}
