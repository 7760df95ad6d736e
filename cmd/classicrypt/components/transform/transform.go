package transform

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/sergeii/classicrypt/cmd/classicrypt/application"
	"github.com/sergeii/classicrypt/cmd/classicrypt/commander"
	"github.com/sergeii/classicrypt/cmd/classicrypt/container"
	"github.com/sergeii/classicrypt/internal/core/entities/variant"
	"github.com/sergeii/classicrypt/internal/core/usecases/transformtext"
)

type Config struct {
	Output io.Writer
}

type Component struct {
	uc     transformtext.UseCase
	out    io.Writer
	logger *zerolog.Logger
}

func New(cfg Config, cont container.Container, logger *zerolog.Logger) *Component {
	return &Component{
		uc:     cont.TransformText,
		out:    cfg.Output,
		logger: logger,
	}
}

// Transform writes the result followed by a newline.
func (c *Component) Transform(ctx context.Context, req transformtext.Request) error {
	resp, err := c.uc.Execute(ctx, req)
	if err != nil {
		return err
	}
	if _, err = fmt.Fprintln(c.out, resp.Text); err != nil {
		c.logger.Error().Err(err).Msg("Failed to write result")
		return err
	}
	return nil
}

type options struct {
	Variant string `help:"Cipher variant (gronsfeld, permutation), taken from the stored key when omitted"`
	Key     string `help:"Cipher key"           xor:"key"`
	KeyName string `help:"Name of a stored key" xor:"key"`
	Text    string `arg:""                      help:"Text to transform"`
}

func (o options) request(op transformtext.Operation) (transformtext.Request, error) {
	req := transformtext.Request{
		Operation: op,
		Key:       o.Key,
		KeyName:   o.KeyName,
		Text:      o.Text,
	}
	if o.Variant != "" {
		v, err := variant.Parse(o.Variant)
		if err != nil {
			return transformtext.Request{}, err
		}
		req.Variant = v
	}
	return req, nil
}

func (o options) run(builder *application.Builder, op transformtext.Operation) error {
	req, err := o.request(op)
	if err != nil {
		return err
	}

	var component *Component
	app := builder.
		Add(
			fx.Supply(Config{Output: os.Stdout}),
			Module,
			fx.Populate(&component),
		).
		Build()

	ctx := context.Background()
	if err = app.Start(ctx); err != nil {
		return err
	}
	defer app.Stop(ctx) // nolint: errcheck

	return component.Transform(ctx, req)
}

type encryptCmd struct {
	options
}

func (c *encryptCmd) Run(_ *commander.Globals, builder *application.Builder) error {
	return c.run(builder, transformtext.Encrypt)
}

type decryptCmd struct {
	options
}

func (c *decryptCmd) Run(_ *commander.Globals, builder *application.Builder) error {
	return c.run(builder, transformtext.Decrypt)
}

type CLI struct {
	Encrypt encryptCmd `cmd:"" help:"Encrypt text and print the result"`
	Decrypt decryptCmd `cmd:"" help:"Decrypt text and print the result"`
}

var Module = fx.Module("transform",
	fx.Provide(New),
)
