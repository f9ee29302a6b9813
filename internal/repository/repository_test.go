package repository_test

import (
	"context"
	"errors"
	"feedbacker/internal/db"
	"feedbacker/internal/repository"
	"feedbacker/internal/repository/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("FeedbackRepository", func() {
	var (
		repo        *repository.FeedbackRepository
		fakeStorage *fake.Storage
		ctx         context.Context
		fakeErr     error
	)

	BeforeEach(func() {
		fakeStorage = new(fake.Storage)
		repo = repository.NewFeedbackRepository(fakeStorage)
		ctx = context.Background()
		fakeErr = errors.New("fake error")
	})

	Describe("MigrateTables", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.MigrateTables()
		})

		When("migration succeeds", func() {
			BeforeEach(func() {
				fakeStorage.MigrateTableReturns(nil)
			})

			It("should migrate the user and feedback tables", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.MigrateTableCallCount()).To(Equal(1))
				tables := fakeStorage.MigrateTableArgsForCall(0)
				Expect(tables).To(HaveLen(2))
				Expect(tables[0]).To(BeAssignableToTypeOf(&repository.User{}))
				Expect(tables[1]).To(BeAssignableToTypeOf(&repository.Feedback{}))
			})
		})

		When("migration fails", func() {
			BeforeEach(func() {
				fakeStorage.MigrateTableReturns(errors.New("migration error"))
			})

			It("should return an error", func() {
				Expect(err).To(MatchError("migrate table(s): migration error"))
			})
		})
	})

	Describe("CreateUser", func() {
		var (
			user repository.User
			err  error
		)

		BeforeEach(func() {
			user = repository.User{
				Username:     "alice",
				PasswordHash: "hashed_password",
				Email:        "alice@example.com",
			}
		})

		JustBeforeEach(func() {
			err = repo.CreateUser(ctx, user)
		})

		When("the insert succeeds", func() {
			BeforeEach(func() {
				fakeStorage.CreateRecordReturns(nil)
			})

			It("should create the user", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.CreateRecordCallCount()).To(Equal(1))
				_, record := fakeStorage.CreateRecordArgsForCall(0)
				Expect(record).To(Equal(&user))
			})
		})

		When("the username or email is already taken", func() {
			BeforeEach(func() {
				fakeStorage.CreateRecordReturns(db.ErrDuplicate)
			})

			It("should return ErrDuplicateUser", func() {
				Expect(err).To(MatchError(repository.ErrDuplicateUser))
			})
		})

		When("the insert fails", func() {
			BeforeEach(func() {
				fakeStorage.CreateRecordReturns(fakeErr)
			})

			It("should return an error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetUser", func() {
		var (
			user     repository.User
			err      error
			testUser repository.User
		)

		BeforeEach(func() {
			testUser = repository.User{
				Username:     "alice",
				PasswordHash: "hashed_password",
				Email:        "alice@example.com",
			}
		})

		JustBeforeEach(func() {
			user, err = repo.GetUser(ctx, "alice")
		})

		When("the user exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(ctx context.Context, column string, value any, dest any) error {
					user := dest.(*repository.User)
					*user = testUser
					return nil
				}
			})

			It("should return the user", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user).To(Equal(testUser))

				Expect(fakeStorage.GetOneByCallCount()).To(Equal(1))
				_, col, val, _ := fakeStorage.GetOneByArgsForCall(0)
				Expect(col).To(Equal("username"))
				Expect(val).To(Equal("alice"))
			})
		})

		When("the user doesn't exist", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return user not found error", func() {
				Expect(err).To(MatchError(repository.ErrUserNotFound))
			})
		})

		When("a database error occurs", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("DeleteUserWithFeedback", func() {
		var err error

		BeforeEach(func() {
			fakeStorage.TransactionStub = func(ctx context.Context, fn func(tx db.Tx) error) error {
				return fn(fakeStorage)
			}
		})

		JustBeforeEach(func() {
			err = repo.DeleteUserWithFeedback(ctx, "alice")
		})

		When("the deletes succeed", func() {
			BeforeEach(func() {
				fakeStorage.DeleteAllByReturns(nil)
			})

			It("should delete the feedback before the user, in one transaction", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.TransactionCallCount()).To(Equal(1))
				Expect(fakeStorage.DeleteAllByCallCount()).To(Equal(2))

				_, col, val, model := fakeStorage.DeleteAllByArgsForCall(0)
				Expect(col).To(Equal("username"))
				Expect(val).To(Equal("alice"))
				Expect(model).To(BeAssignableToTypeOf(&repository.Feedback{}))

				_, col, val, model = fakeStorage.DeleteAllByArgsForCall(1)
				Expect(col).To(Equal("username"))
				Expect(val).To(Equal("alice"))
				Expect(model).To(BeAssignableToTypeOf(&repository.User{}))
			})
		})

		When("deleting the feedback fails", func() {
			BeforeEach(func() {
				fakeStorage.DeleteAllByReturns(fakeErr)
			})

			It("should return the error without touching the user", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeStorage.DeleteAllByCallCount()).To(Equal(1))
			})
		})

		When("deleting the user fails", func() {
			BeforeEach(func() {
				fakeStorage.DeleteAllByReturnsOnCall(0, nil)
				fakeStorage.DeleteAllByReturnsOnCall(1, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeStorage.DeleteAllByCallCount()).To(Equal(2))
			})
		})

		When("the transaction fails", func() {
			BeforeEach(func() {
				fakeStorage.TransactionStub = nil
				fakeStorage.TransactionReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("CreateFeedback", func() {
		var (
			feedback repository.Feedback
			err      error
		)

		BeforeEach(func() {
			feedback = repository.Feedback{
				Title:    "Great service",
				Content:  "Would recommend.",
				Username: "alice",
			}
		})

		JustBeforeEach(func() {
			err = repo.CreateFeedback(ctx, &feedback)
		})

		When("the insert succeeds", func() {
			BeforeEach(func() {
				fakeStorage.CreateRecordStub = func(ctx context.Context, record any) error {
					fb := record.(*repository.Feedback)
					fb.ID = 7
					return nil
				}
			})

			It("should create the feedback and populate its ID", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(feedback.ID).To(Equal(uint(7)))

				Expect(fakeStorage.CreateRecordCallCount()).To(Equal(1))
				_, record := fakeStorage.CreateRecordArgsForCall(0)
				Expect(record).To(Equal(&feedback))
			})
		})

		When("the insert fails", func() {
			BeforeEach(func() {
				fakeStorage.CreateRecordReturns(fakeErr)
			})

			It("should return an error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetFeedbackByID", func() {
		var (
			feedback repository.Feedback
			err      error
		)

		JustBeforeEach(func() {
			feedback, err = repo.GetFeedbackByID(ctx, 7)
		})

		When("the feedback exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(ctx context.Context, column string, value any, dest any) error {
					fb := dest.(*repository.Feedback)
					*fb = repository.Feedback{ID: 7, Title: "Great service", Username: "alice"}
					return nil
				}
			})

			It("should return the feedback", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(feedback.ID).To(Equal(uint(7)))

				Expect(fakeStorage.GetOneByCallCount()).To(Equal(1))
				_, col, val, _ := fakeStorage.GetOneByArgsForCall(0)
				Expect(col).To(Equal("id"))
				Expect(val).To(Equal(uint(7)))
			})
		})

		When("the feedback doesn't exist", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return feedback not found error", func() {
				Expect(err).To(MatchError(repository.ErrFeedbackNotFound))
			})
		})

		When("a database error occurs", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetFeedbackForUser", func() {
		var (
			feedback []repository.Feedback
			err      error
		)

		JustBeforeEach(func() {
			feedback, err = repo.GetFeedbackForUser(ctx, "alice")
		})

		When("the user has feedback", func() {
			BeforeEach(func() {
				fakeStorage.GetAllByStub = func(ctx context.Context, column string, value any, dest any) error {
					fbs := dest.(*[]repository.Feedback)
					*fbs = []repository.Feedback{
						{ID: 1, Username: "alice"},
						{ID: 2, Username: "alice"},
					}
					return nil
				}
			})

			It("should return the user's feedback", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(feedback).To(HaveLen(2))

				Expect(fakeStorage.GetAllByCallCount()).To(Equal(1))
				_, col, val, _ := fakeStorage.GetAllByArgsForCall(0)
				Expect(col).To(Equal("username"))
				Expect(val).To(Equal("alice"))
			})
		})

		When("the user has no feedback", func() {
			BeforeEach(func() {
				fakeStorage.GetAllByReturns(nil)
			})

			It("should return an empty slice", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(feedback).To(BeEmpty())
			})
		})

		When("a database error occurs", func() {
			BeforeEach(func() {
				fakeStorage.GetAllByReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("UpdateFeedback", func() {
		var (
			feedback repository.Feedback
			err      error
		)

		BeforeEach(func() {
			feedback = repository.Feedback{
				ID:       7,
				Title:    "Updated title",
				Content:  "Updated content.",
				Username: "alice",
			}
		})

		JustBeforeEach(func() {
			err = repo.UpdateFeedback(ctx, feedback)
		})

		When("the save succeeds", func() {
			BeforeEach(func() {
				fakeStorage.SaveRecordReturns(nil)
			})

			It("should save the feedback", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.SaveRecordCallCount()).To(Equal(1))
				_, record := fakeStorage.SaveRecordArgsForCall(0)
				Expect(record).To(Equal(&feedback))
			})
		})

		When("the save fails", func() {
			BeforeEach(func() {
				fakeStorage.SaveRecordReturns(fakeErr)
			})

			It("should return an error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("DeleteFeedback", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.DeleteFeedback(ctx, 7)
		})

		When("the delete succeeds", func() {
			BeforeEach(func() {
				fakeStorage.DeleteAllByReturns(nil)
			})

			It("should delete the feedback", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.DeleteAllByCallCount()).To(Equal(1))
				_, col, val, model := fakeStorage.DeleteAllByArgsForCall(0)
				Expect(col).To(Equal("id"))
				Expect(val).To(Equal(uint(7)))
				Expect(model).To(BeAssignableToTypeOf(&repository.Feedback{}))
			})
		})

		When("the delete fails", func() {
			BeforeEach(func() {
				fakeStorage.DeleteAllByReturns(fakeErr)
			})

			It("should return an error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})
})
