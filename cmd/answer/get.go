package answer

import (
	"context"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/nathants/answer/lib"
)

func init() {
	lib.Commands["answer-get"] = answerGet
	lib.Args["answer-get"] = answerGetArgs{}
}

type answerGetArgs struct {
	Artifact string `arg:"-a,--artifact,env:ANSWER_PATH" help:"path or s3://bucket/key, relative paths resolve against the deployment root"`
}

func (answerGetArgs) Description() string {
	return "\ninvoke the answer handler once and write the body to stdout\n"
}

func answerGet() {
	var args answerGetArgs
	arg.MustParse(&args)
	ctx := context.Background()
	artifact, err := lib.NewArtifact(ctx, &lib.Config{Artifact: args.Artifact})
	if err != nil {
		lib.Logger.Fatal("error: ", err)
	}
	resp, err := lib.NewHandler(artifact).Handle(ctx, lib.Request{})
	if err != nil {
		lib.Logger.Fatal("error: ", err)
	}
	_, err = os.Stdout.Write(resp.Body)
	if err != nil {
		lib.Logger.Fatal("error: ", err)
	}
}
