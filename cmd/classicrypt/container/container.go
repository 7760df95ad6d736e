package container

import (
	"go.uber.org/fx"

	"github.com/sergeii/classicrypt/internal/core/usecases/addkey"
	"github.com/sergeii/classicrypt/internal/core/usecases/getkey"
	"github.com/sergeii/classicrypt/internal/core/usecases/listkeys"
	"github.com/sergeii/classicrypt/internal/core/usecases/removekey"
	"github.com/sergeii/classicrypt/internal/core/usecases/transformtext"
)

type Container struct {
	TransformText transformtext.UseCase
	AddKey        addkey.UseCase
	GetKey        getkey.UseCase
	ListKeys      listkeys.UseCase
	RemoveKey     removekey.UseCase
}

func New(
	transformTextUseCase transformtext.UseCase,
	addKeyUseCase addkey.UseCase,
	getKeyUseCase getkey.UseCase,
	listKeysUseCase listkeys.UseCase,
	removeKeyUseCase removekey.UseCase,
) Container {
	return Container{
		TransformText: transformTextUseCase,
		AddKey:        addKeyUseCase,
		GetKey:        getKeyUseCase,
		ListKeys:      listKeysUseCase,
		RemoveKey:     removeKeyUseCase,
	}
}

var Module = fx.Module("container",
	fx.Provide(transformtext.New),
	fx.Provide(addkey.New),
	fx.Provide(getkey.New),
	fx.Provide(listkeys.New),
	fx.Provide(removekey.New),
	fx.Provide(New),
)
